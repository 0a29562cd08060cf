// Package domain contains the entities shared by the service, storage, worker
// and API layers: ladders requested by users, solutions produced by the solver
// and a few read-only views such as dictionary info. The types carry no
// infrastructure concerns.
package domain

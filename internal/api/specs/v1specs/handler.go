package v1specs

import (
	"context"

	"github.com/google/uuid"
)

// OperationName is the name of an API operation.
type OperationName = string

const (
	GetDictionaryOperation OperationName = "GetDictionary"
	CheckWordOperation     OperationName = "CheckWord"
	ShareWordOperation     OperationName = "ShareWord"
	SolveOperation         OperationName = "Solve"
	SentimentOperation     OperationName = "Sentiment"
	CreateLadderOperation  OperationName = "CreateLadder"
	ListLaddersOperation   OperationName = "ListLadders"
	GetLadderOperation     OperationName = "GetLadder"
	DeleteLadderOperation  OperationName = "DeleteLadder"
)

// CheckWordParams are the parameters of CheckWord.
type CheckWordParams struct {
	Word string
}

// ShareWordParams are the parameters of ShareWord.
type ShareWordParams struct {
	Word1 string
}

// ListLaddersParams are the parameters of ListLadders.
type ListLaddersParams struct {
	Status OptString
	Cursor OptString
	Limit  OptInt
}

// GetLadderParams are the parameters of GetLadder.
type GetLadderParams struct {
	ID uuid.UUID
}

// DeleteLadderParams are the parameters of DeleteLadder.
type DeleteLadderParams struct {
	ID uuid.UUID
}

// Handler handles operations described by the v1 OpenAPI document.
type Handler interface {
	// GetDictionary implements GET /dictionary.
	GetDictionary(ctx context.Context) (*DictionaryInfo, error)
	// CheckWord implements GET /words/{word}.
	CheckWord(ctx context.Context, params CheckWordParams) (*WordCheck, error)
	// ShareWord implements GET /share.
	ShareWord(ctx context.Context, params ShareWordParams) (*ShareLink, error)
	// Solve implements POST /solve.
	Solve(ctx context.Context, req *SolveRequest) (*Solution, error)
	// Sentiment implements POST /sentiment.
	Sentiment(ctx context.Context, req *SentimentRequest) (*SentimentResult, error)
	// CreateLadder implements POST /ladders.
	CreateLadder(ctx context.Context, req *CreateLadderRequest) (*Ladder, error)
	// ListLadders implements GET /ladders.
	ListLadders(ctx context.Context, params ListLaddersParams) (*LadderList, error)
	// GetLadder implements GET /ladders/{id}.
	GetLadder(ctx context.Context, params GetLadderParams) (*Ladder, error)
	// DeleteLadder implements DELETE /ladders/{id}.
	DeleteLadder(ctx context.Context, params DeleteLadderParams) error
	// NewError creates an *ErrorStatusCode from an error returned by handler
	// methods or produced while decoding a request.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// BearerAuth carries the token of the bearer security scheme.
type BearerAuth struct {
	Token string
}

// SecurityHandler is handler for security parameters.
type SecurityHandler interface {
	// HandleBearerAuth handles bearerAuth security and returns the context
	// passed on to the operation.
	HandleBearerAuth(ctx context.Context, operationName OperationName, t BearerAuth) (context.Context, error)
}

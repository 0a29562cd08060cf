package v1specs

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// Encoder is implemented by every response body.
type Encoder interface {
	Encode(e *jx.Encoder)
}

// OptString is an optional string.
type OptString struct {
	Value string
	Set   bool
}

// NewOptString returns a set OptString.
func NewOptString(v string) OptString { return OptString{Value: v, Set: true} }

// IsSet reports whether the value was provided.
func (o OptString) IsSet() bool { return o.Set }

// Or returns the value or d when it is not set.
func (o OptString) Or(d string) string {
	if o.Set {
		return o.Value
	}

	return d
}

// OptInt is an optional int.
type OptInt struct {
	Value int
	Set   bool
}

// NewOptInt returns a set OptInt.
func NewOptInt(v int) OptInt { return OptInt{Value: v, Set: true} }

// Or returns the value or d when it is not set.
func (o OptInt) Or(d int) int {
	if o.Set {
		return o.Value
	}

	return d
}

// OptDateTime is an optional timestamp.
type OptDateTime struct {
	Value time.Time
	Set   bool
}

// NewOptDateTime returns a set OptDateTime.
func NewOptDateTime(v time.Time) OptDateTime { return OptDateTime{Value: v, Set: true} }

// SetTo sets the value.
func (o *OptDateTime) SetTo(v time.Time) { o.Value, o.Set = v, true }

// IsSet reports whether the value was provided.
func (o OptDateTime) IsSet() bool { return o.Set }

// OptNilString is an optional, nullable string. An unset value encodes as null.
type OptNilString struct {
	Value string
	Set   bool
}

// NewOptNilString returns a set OptNilString.
func NewOptNilString(v string) OptNilString { return OptNilString{Value: v, Set: true} }

// IsSet reports whether the value was provided.
func (o OptNilString) IsSet() bool { return o.Set }

// SolveRequest is the body of POST /solve.
type SolveRequest struct {
	Start  string
	Target string
}

// Decode decodes SolveRequest from json.
func (s *SolveRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode SolveRequest to nil")
	}

	return decodeQuery(d, "SolveRequest", &s.Start, &s.Target)
}

// CreateLadderRequest is the body of POST /ladders.
type CreateLadderRequest struct {
	Start  string
	Target string
}

// Decode decodes CreateLadderRequest from json.
func (s *CreateLadderRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode CreateLadderRequest to nil")
	}

	return decodeQuery(d, "CreateLadderRequest", &s.Start, &s.Target)
}

func decodeQuery(d *jx.Decoder, name string, start, target *string) error {
	var seen uint8
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "start":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"start\"")
			}
			*start = v
			seen |= 1 << 0
		case "target":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"target\"")
			}
			*target = v
			seen |= 1 << 1
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return errors.Wrapf(err, "decode %s", name)
	}

	switch {
	case seen&(1<<0) == 0:
		return errors.Errorf("decode %s: missing required field \"start\"", name)
	case seen&(1<<1) == 0:
		return errors.Errorf("decode %s: missing required field \"target\"", name)
	}

	return nil
}

// SentimentRequest is the body of POST /sentiment.
type SentimentRequest struct {
	Text string
}

// Decode decodes SentimentRequest from json.
func (s *SentimentRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode SentimentRequest to nil")
	}

	seen := false
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		if string(k) != "text" {
			return d.Skip()
		}
		v, err := d.Str()
		if err != nil {
			return errors.Wrap(err, "decode field \"text\"")
		}
		s.Text = v
		seen = true

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode SentimentRequest")
	}
	if !seen {
		return errors.New("decode SentimentRequest: missing required field \"text\"")
	}

	return nil
}

// Solution is a solved query.
type Solution struct {
	Start  string
	Target string
	Found  bool
	Steps  int
	Path   []string
}

// Encode implements json.Marshaler.
func (s *Solution) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("start")
	e.Str(s.Start)
	e.FieldStart("target")
	e.Str(s.Target)
	e.FieldStart("found")
	e.Bool(s.Found)
	e.FieldStart("steps")
	e.Int(s.Steps)
	e.FieldStart("path")
	e.ArrStart()
	for _, w := range s.Path {
		e.Str(w)
	}
	e.ArrEnd()
	e.ObjEnd()
}

// WordCheck is the response of GET /words/{word}.
type WordCheck struct {
	Word  string
	Valid bool
}

// Encode implements json.Marshaler.
func (s *WordCheck) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("word")
	e.Str(s.Word)
	e.FieldStart("valid")
	e.Bool(s.Valid)
	e.ObjEnd()
}

// DictionaryInfo is the response of GET /dictionary.
type DictionaryInfo struct {
	WordLength  int
	Size        int
	Fingerprint string
}

// Encode implements json.Marshaler.
func (s *DictionaryInfo) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("wordLength")
	e.Int(s.WordLength)
	e.FieldStart("size")
	e.Int(s.Size)
	e.FieldStart("fingerprint")
	e.Str(s.Fingerprint)
	e.ObjEnd()
}

// ShareLink is the response of GET /share.
type ShareLink struct {
	URL string
}

// Encode implements json.Marshaler.
func (s *ShareLink) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("url")
	e.Str(s.URL)
	e.ObjEnd()
}

// SentimentResult is the response of POST /sentiment.
type SentimentResult struct {
	Label string
}

// Encode implements json.Marshaler.
func (s *SentimentResult) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("label")
	e.Str(s.Label)
	e.ObjEnd()
}

// LadderStatus is the processing state of a ladder request.
type LadderStatus string

const (
	LadderStatusPENDING   LadderStatus = "PENDING"
	LadderStatusCOMPLETED LadderStatus = "COMPLETED"
	LadderStatusFAILED    LadderStatus = "FAILED"
)

// Ladder is an asynchronous ladder request.
type Ladder struct {
	ID        uuid.UUID
	Start     string
	Target    string
	Status    LadderStatus
	Result    Solution
	Attempts  int
	CreatedAt time.Time
	UpdatedAt OptDateTime
}

// Encode implements json.Marshaler.
func (s *Ladder) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(s.ID.String())
	e.FieldStart("start")
	e.Str(s.Start)
	e.FieldStart("target")
	e.Str(s.Target)
	e.FieldStart("status")
	e.Str(string(s.Status))
	e.FieldStart("result")
	s.Result.Encode(e)
	e.FieldStart("attempts")
	e.Int(s.Attempts)
	e.FieldStart("createdAt")
	e.Str(s.CreatedAt.Format(time.RFC3339Nano))
	if s.UpdatedAt.Set {
		e.FieldStart("updatedAt")
		e.Str(s.UpdatedAt.Value.Format(time.RFC3339Nano))
	}
	e.ObjEnd()
}

// LadderList is one page of ladders.
type LadderList struct {
	Items      []Ladder
	NextCursor OptNilString
}

// Encode implements json.Marshaler.
func (s *LadderList) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("items")
	e.ArrStart()
	for i := range s.Items {
		s.Items[i].Encode(e)
	}
	e.ArrEnd()
	e.FieldStart("nextCursor")
	if s.NextCursor.Set {
		e.Str(s.NextCursor.Value)
	} else {
		e.Null()
	}
	e.ObjEnd()
}

// Error is the body of every error response.
type Error struct {
	Code    string
	Message string
}

// Encode implements json.Marshaler.
func (s *Error) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(s.Code)
	e.FieldStart("message")
	e.Str(s.Message)
	e.ObjEnd()
}

// ErrorStatusCode pairs an error body with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// Error implements the error interface.
func (s *ErrorStatusCode) Error() string {
	return s.Response.Code + ": " + s.Response.Message
}

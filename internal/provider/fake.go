package provider

import (
	"context"
	"sync/atomic"

	"github.com/leadsmith/leadsmith/internal/message"
)

// FakeProvider returns canned text or an error. It is used in tests and
// for dry runs.
type FakeProvider struct {
	ResponseText string
	Error        error
	// FailOn makes only requests for leads with this name fail.
	FailOn string

	calls atomic.Int64
}

func NewFake(response string) *FakeProvider {
	return &FakeProvider{ResponseText: response}
}

func (f *FakeProvider) Name() string { return "fake" }

func (f *FakeProvider) Draft(ctx context.Context, req *Request) (*Response, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Error != nil && (f.FailOn == "" || f.FailOn == req.Lead.Name) {
		return nil, f.Error
	}
	return &Response{
		RequestID: ensureID(req.ID),
		Provider:  f.Name(),
		Draft:     message.Draft{Text: f.ResponseText},
	}, nil
}

// Calls reports how many drafts were requested.
func (f *FakeProvider) Calls() int {
	return int(f.calls.Load())
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ava-labs/bondingcurve/pricing"
)

func NewResponse(id int) *Response {
	return &Response{
		ID: id,
	}
}

type Response struct {
	// The index of the step that generated this response.
	ID int `json:"id"`
	// The price computed by the step.
	Price *pricing.Price `json:"price,omitempty"`
	// The error returned by the curve, if any.
	Error string `json:"error,omitempty"`
	// Whether the step met its requirement. A step without a requirement
	// passes when it does not fail.
	Passed bool `json:"passed"`
	// Why the requirement was not met.
	Failure string `json:"failure,omitempty"`
}

func (r *Response) setPrice(p pricing.Price) {
	r.Price = &p
}

func (r *Response) setError(err error) {
	r.Error = err.Error()
}

func (r *Response) setFailure(err error) {
	r.Passed = false
	r.Failure = err.Error()
}

// Print writes the response as a single JSON line.
func (r *Response) Print(w io.Writer) error {
	jsonBytes, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}

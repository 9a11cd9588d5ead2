package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownPayloadShape is returned when a backend payload matches none of
// the known response envelopes. Callers should treat it as a hard failure
// rather than guessing at field meanings.
var ErrUnknownPayloadShape = errors.New("unknown payload shape")

// riskProfileEnvelope enumerates the envelopes the backend has been observed
// to wrap risk-profile results in: the bare response, {"data": {...}} and
// {"result": {...}}.
type riskProfileEnvelope struct {
	RiskProfile json.RawMessage `json:"riskProfile"`
	Data        json.RawMessage `json:"data"`
	Result      json.RawMessage `json:"result"`
}

// DecodeRiskProfileResponse decodes a risk-profile payload, unwrapping known
// envelopes. Exactly one branch is taken; a payload that matches no branch,
// or whose unwrapped body lacks a risk level, fails with
// ErrUnknownPayloadShape.
func DecodeRiskProfileResponse(data []byte) (*RiskProfileResponse, error) {
	var env riskProfileEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPayloadShape, err)
	}

	var body []byte
	switch {
	case len(env.RiskProfile) > 0 && string(env.RiskProfile) != "null":
		body = data
	case len(env.Data) > 0 && string(env.Data) != "null":
		body = env.Data
	case len(env.Result) > 0 && string(env.Result) != "null":
		body = env.Result
	default:
		return nil, fmt.Errorf("%w: no riskProfile, data or result field", ErrUnknownPayloadShape)
	}

	var resp RiskProfileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPayloadShape, err)
	}
	if resp.RiskProfile.Level == "" {
		return nil, fmt.Errorf("%w: missing risk level", ErrUnknownPayloadShape)
	}
	return &resp, nil
}

package application

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/authflow-cli/internal/domain"
)

// The session holds exactly two slots: one pending attempt, one completed
// login. Both are JSON records under fixed keys.
const (
	flowStateKey      = "authflow/flow_state"
	authenticationKey = "authflow/authentication"
)

func encodeFlowState(fs domain.FlowState) (string, error) {
	raw, err := json.Marshal(fs)
	if err != nil {
		return "", fmt.Errorf("encode flow state: %w", err)
	}

	return string(raw), nil
}

func decodeFlowState(value string) (domain.FlowState, error) {
	var fs domain.FlowState
	if err := json.Unmarshal([]byte(value), &fs); err != nil {
		return domain.FlowState{}, fmt.Errorf("decode flow state: %w", err)
	}

	return fs, nil
}

func encodeAuthentication(auth domain.Authentication) (string, error) {
	raw, err := json.Marshal(auth)
	if err != nil {
		return "", fmt.Errorf("encode authentication: %w", err)
	}

	return string(raw), nil
}

func decodeAuthentication(value string) (domain.Authentication, error) {
	var auth domain.Authentication
	if err := json.Unmarshal([]byte(value), &auth); err != nil {
		return domain.Authentication{}, fmt.Errorf("decode authentication: %w", err)
	}

	return auth, nil
}

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// RawAccount is one line of a tenant's chart of accounts as received.
type RawAccount struct {
	Name           string `json:"name" csv:"name"`
	Classification string `json:"classification,omitempty" csv:"classification"`
	Code           string `json:"accountCode,omitempty" csv:"code"`
	AccountType    string `json:"accountType,omitempty" csv:"type"`
}

// EffectiveClassification returns the classification, falling back to the account type.
func (a RawAccount) EffectiveClassification() string {
	if c := strings.TrimSpace(a.Classification); c != "" {
		return c
	}
	return strings.TrimSpace(a.AccountType)
}

// UnmarshalJSON accepts either a bare account name or an account object.
func (a *RawAccount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		*a = RawAccount{Name: name}
		return nil
	}

	// Alias drops the method set so decoding does not recurse.
	type rawAccount RawAccount
	var decoded rawAccount
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return fmt.Errorf("account must be a string or an object: %w", err)
	}
	*a = RawAccount(decoded)
	return nil
}

package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Spreadsheet cells come back loosely typed: ids may be numbers, empty
// cells are "" instead of null. The types below absorb that on read only.

type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

type flexDecimal struct {
	decimal.Decimal
}

func (d *flexDecimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		d.Decimal = decimal.Zero
		return nil
	}
	return d.Decimal.UnmarshalJSON(data)
}

type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		t.Time = time.Time{}
		return nil
	}
	return t.Time.UnmarshalJSON(data)
}

func (a *Account) UnmarshalJSON(data []byte) error {
	type alias Account
	aux := struct {
		*alias
		ID           flexString  `json:"id"`
		ContactPhone flexString  `json:"phoneNumber"`
		QRToken      flexString  `json:"qrData"`
		Balance      flexDecimal `json:"balance"`
		CreatedAt    flexTime    `json:"createdAt"`
	}{alias: (*alias)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.ID = string(aux.ID)
	a.ContactPhone = string(aux.ContactPhone)
	a.QRToken = string(aux.QRToken)
	a.Balance = aux.Balance.Decimal
	a.CreatedAt = aux.CreatedAt.Time
	return nil
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction
	aux := struct {
		*alias
		ID            flexString  `json:"id"`
		AccountID     flexString  `json:"userId"`
		OperatorID    flexString  `json:"adminId"`
		GrossAmount   flexDecimal `json:"amount"`
		CashbackDelta flexDecimal `json:"cashbackAmount"`
		OccurredAt    flexTime    `json:"timestamp"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.ID = string(aux.ID)
	t.AccountID = string(aux.AccountID)
	t.OperatorID = string(aux.OperatorID)
	t.GrossAmount = aux.GrossAmount.Decimal
	t.CashbackDelta = aux.CashbackDelta.Decimal
	t.OccurredAt = aux.OccurredAt.Time
	return nil
}

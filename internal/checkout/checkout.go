package checkout

import (
	"errors"
	"strings"
)

// ErrMissingFields gates submission: while any contact field is empty
// no network or navigation side effect may happen.
var ErrMissingFields = errors.New("preencha todos os seus dados para finalizar a compra")

// Draft holds the customer-entered contact data. It lives only in page
// memory and is never persisted before a successful submission.
type Draft struct {
	Nome     string
	Email    string
	Telefone string
	Endereco string
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Nome) == "" ||
		strings.TrimSpace(d.Email) == "" ||
		strings.TrimSpace(d.Telefone) == "" ||
		strings.TrimSpace(d.Endereco) == "" {
		return ErrMissingFields
	}
	return nil
}

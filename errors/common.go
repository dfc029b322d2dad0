package errors

import "fmt"

func InvalidParamsErr(err error) error {
	return E(Invalid, "invalid params", err)
}

func ValidationFailedErr(err error) error {
	return E(Invalid, "validation failed", err)
}

func EmptyParamErr(field string) error {
	ve := ValidationErrs()
	ve.Add(field, "cannot be empty")
	return E(Invalid, "validation failed", ve.Err())
}

// StoreUnavailableErr returns a formated error for an upstream store fetch failure
func StoreUnavailableErr(store string, err error) error {
	return E(Unavailable, fmt.Sprintf("%s store unavailable", store), err)
}

// WalletNotFoundErr returns a formated error for a missing wallet scope
func WalletNotFoundErr(walletID string) error {
	return E(NotFound, fmt.Sprintf("wallet %s not found", walletID), nil)
}

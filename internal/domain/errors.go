package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrSourceAccountNotFound = errors.New("Source account not found")
var ErrDestinationAccountNotFound = errors.New("Destination account not found")
var ErrInsufficientBalance = errors.New("Insufficient balance")
var ErrSameAccount = errors.New("Source and destination accounts cannot be the same")

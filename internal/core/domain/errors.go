package domain

import "errors"

// Credential and token failures deliberately collapse into a single error so
// callers cannot distinguish which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInactiveUser = errors.New("inactive user")

var ErrEmailTaken = errors.New("email already registered")
var ErrTenantNotFound = errors.New("tenant not found")
var ErrUserNotFound = errors.New("user not found")

var ErrCustomerNotFound = errors.New("customer not found")
var ErrProductNotFound = errors.New("product not found")
var ErrMachineryNotFound = errors.New("machinery not found")

var ErrDuplicateSKU = errors.New("sku already exists")
var ErrDuplicateCode = errors.New("machinery code already exists")

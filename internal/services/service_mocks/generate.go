// Package service_mocks holds gomock doubles for the service interfaces
// consumed by handlers, middleware and the server container.
package service_mocks

//go:generate mockgen -source=../interfaces.go -destination=service_mocks.go -package=service_mocks

// Package service contains the business logic.
//
// It sits between the handler and repository layers. Each service receives
// the repositories it uses as constructor parameters, returns absent records
// as *errs.HTTPError 404s and leaves store failures for the global error
// handler to translate.
package service

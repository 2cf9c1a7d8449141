// Package model defines the entities stored by the repositories and the
// request payloads the handlers bind.
package model

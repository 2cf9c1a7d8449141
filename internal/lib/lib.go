// Package lib groups the integrations the application uses beside its core
// layers: email delivery, background jobs and small helpers.
package lib

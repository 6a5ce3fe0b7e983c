// Package domain holds the account entity and the contracts the signup flow
// depends on (EmailValidator and AccountCreator). It has no knowledge of
// HTTP or storage.
package domain

// Package mocks provides hand-written test doubles for the signup service's
// collaborator interfaces (email validation, account creation, account
// storage and password hashing). Each mock records its calls and accepts an
// optional Fn field to override the default behaviour.
package mocks

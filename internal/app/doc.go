// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces: command execution and rollback (AutomationService), accounts
// and sessions (AccountService), and the credential lifecycle
// (CredentialManager).
package app

// Package google resolves OAuth and service-account credentials for the
// Google Workspace APIs and turns them into ready-to-use API client options.
//
// Credential resolution follows a fixed fallback chain; the first
// applicable strategy wins:
//
//  1. Base64-encoded service-account JSON from the CREDENTIALS_CONFIG
//     environment variable
//  2. A service-account key file at SERVICE_ACCOUNT_PATH
//  3. A previously persisted user token at TOKEN_PATH, refreshed and
//     written back if expired
//  4. An interactive browser authorization flow using the OAuth client
//     secrets at CREDENTIALS_PATH
//
// Failures inside a strategy are logged and cause fallthrough to the next
// one; only exhaustion of the whole chain surfaces an AuthError. The token
// file is the only durable state the package writes, and writes are
// whole-file replacements via a temp file and rename.
package google

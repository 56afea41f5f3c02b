// Package domain contains the core model of the CRT portfolio: channels,
// navigation state and the static content shown on each channel.
//
// The domain does not depend on YAML parsing, the terminal or the filesystem.
// Infra/adapters map into/from these types.
package domain

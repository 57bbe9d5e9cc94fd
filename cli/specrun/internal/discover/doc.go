// Package discover enumerates *_spec.lua files under the plugin's spec
// directory. Discovery runs fresh on every invocation; nothing is cached.
package discover

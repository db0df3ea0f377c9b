// Package config loads default conversion settings from a file.
//
// The file is named by the --config flag or the HEX_CONFIG environment
// variable. There is no search path. YAML (.yaml, .yml) and JSON with
// comments (.json, .jsonc) are accepted:
//
//  # ~/.config/hex.yaml
//  read: auto
//  write: hex
//  lower: true
//  signed: true
//  width: 4
//  group: true
//
// Every field is optional. A field that is absent keeps the built in
// default, and command line flags override the file.
//
//  | Field     | Values                             | Default |
//  |-----------|------------------------------------|---------|
//  | read      | auto, binary, octal, decimal, hex  | auto    |
//  | write     | binary, octal, decimal, hex        | hex     |
//  | lower     | bool (lower case hex digits)       | false   |
//  | signed    | bool (two's complement)            | false   |
//  | prefix    | bool (0b, 0o, 0x)                  | true    |
//  | width     | bytes, 0 for none                  | 0       |
//  | round     | bool (round up to whole bytes)     | false   |
//  | group     | bool (separate digit groups)       | false   |
//  | separator | string, empty for the base default | ""      |
package config

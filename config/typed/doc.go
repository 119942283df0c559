// Package typed defines the conversion contract between document nodes and Go configuration
// values, together with its built-in implementations.
//
// Every loadable type implements Value through its pointer. The zero value of a type is its
// default: fields are zero until loaded, and Option starts absent.
//
// Integer types load through a 64-bit intermediate and are then narrowed with a plain
// conversion, so an out-of-range value such as 300 for Uint8 wraps instead of failing.
package typed

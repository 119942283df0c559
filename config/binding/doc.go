// Package binding parses the declarative field bindings attached to configuration struct fields.
//
// A binding is a parenthesised argument list of keyword or positional literals:
//
//	(key = "log/log_path")
//
// Parse splits such a list into Arguments and NewFieldBinding assembles the single FieldBinding a
// struct field may carry. The only recognised keyword is key, naming the slash-delimited path
// of the field inside a document.
//
// Splitting is bracket aware but not quote aware: a comma inside a string literal that is not
// itself enclosed in (), [] or {} ends the argument. String literal arguments therefore cannot
// contain bare commas.
package binding

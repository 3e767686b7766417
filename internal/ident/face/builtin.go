package face

// GoClassifier returns a classifier for Go.
func GoClassifier() *Classifier {
	c := NewClassifier("go", []string{".go"})

	c.AddRule(`(?s)/\*.*?\*/`, Comment)
	c.AddRule(`//[^\n]*`, Comment)
	c.AddRule("(?s)`[^`]*`", String)
	c.AddRule(`"(?:[^"\\\n]|\\.)*"`, String)
	c.AddRule(`'(?:[^'\\\n]|\\.)*'`, String)
	c.AddRule(`\b0[xX][0-9a-fA-F]+\b`, Number)
	c.AddRule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?\b`, Number)

	c.AddKeywords(Keyword,
		"if", "else", "for", "range", "switch", "case", "default",
		"break", "continue", "return", "goto", "fallthrough", "select",
		"func", "var", "const", "type", "struct", "interface", "map", "chan",
		"package", "import", "defer", "go")
	c.AddKeywords(Constant, "true", "false", "nil", "iota")
	c.AddKeywords(Type,
		"int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "complex64", "complex128",
		"bool", "byte", "rune", "string", "error", "any")
	c.AddKeywords(Function,
		"make", "new", "len", "cap", "append", "copy", "delete",
		"close", "panic", "recover", "print", "println",
		"min", "max", "clear")

	return c
}

// PythonClassifier returns a classifier for Python.
func PythonClassifier() *Classifier {
	c := NewClassifier("python", []string{".py", ".pyw", ".pyi"})

	c.AddRule(`(?s)""".*?"""`, String)
	c.AddRule(`(?s)'''.*?'''`, String)
	c.AddRule(`#[^\n]*`, Comment)
	c.AddRule(`"(?:[^"\\\n]|\\.)*"`, String)
	c.AddRule(`'(?:[^'\\\n]|\\.)*'`, String)
	c.AddRule(`\b0[xX][0-9a-fA-F]+\b`, Number)
	c.AddRule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?j?\b`, Number)

	c.AddKeywords(Keyword,
		"if", "elif", "else", "for", "while", "break", "continue",
		"return", "try", "except", "finally", "raise", "with", "as",
		"match", "case", "def", "class", "lambda", "async", "await",
		"import", "from", "global", "nonlocal", "pass", "yield",
		"assert", "del", "in", "is", "not", "and", "or")
	c.AddKeywords(Constant, "True", "False", "None")
	c.AddKeywords(Type,
		"int", "float", "str", "bool", "list", "dict", "set", "tuple",
		"bytes", "bytearray", "complex", "frozenset", "object")

	return c
}

// JavaScriptClassifier returns a classifier for JavaScript/TypeScript.
func JavaScriptClassifier() *Classifier {
	c := NewClassifier("javascript", []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"})

	c.AddRule(`(?s)/\*.*?\*/`, Comment)
	c.AddRule(`//[^\n]*`, Comment)
	c.AddRule("(?s)`[^`]*`", String)
	c.AddRule(`"(?:[^"\\\n]|\\.)*"`, String)
	c.AddRule(`'(?:[^'\\\n]|\\.)*'`, String)
	c.AddRule(`\b0[xX][0-9a-fA-F]+\b`, Number)
	c.AddRule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?\b`, Number)

	c.AddKeywords(Keyword,
		"if", "else", "for", "while", "do", "switch", "case", "default",
		"break", "continue", "return", "throw", "try", "catch", "finally",
		"function", "var", "let", "const", "class", "extends", "async", "await",
		"import", "export", "from", "as", "new", "delete",
		"typeof", "instanceof", "in", "of", "this", "super", "static",
		"get", "set", "yield")
	c.AddKeywords(Constant, "true", "false", "null", "undefined", "NaN", "Infinity")

	return c
}

// RustClassifier returns a classifier for Rust.
func RustClassifier() *Classifier {
	c := NewClassifier("rust", []string{".rs"})

	c.AddRule(`(?s)/\*.*?\*/`, Comment)
	c.AddRule(`//[^\n]*`, Comment)
	c.AddRule(`"(?:[^"\\\n]|\\.)*"`, String)
	c.AddRule(`\b0[xX][0-9a-fA-F_]+\b`, Number)
	c.AddRule(`\b\d[\d_]*\.?[\d_]*(?:[eE][+-]?[\d_]+)?\b`, Number)

	c.AddKeywords(Keyword,
		"if", "else", "match", "for", "while", "loop", "break", "continue",
		"return", "yield", "fn", "let", "mut", "const", "static",
		"struct", "enum", "trait", "impl", "type", "mod",
		"use", "crate", "super", "self", "pub", "where", "as",
		"async", "await", "dyn", "move", "ref", "unsafe", "extern")
	c.AddKeywords(Constant, "true", "false", "None", "Some", "Ok", "Err")
	c.AddKeywords(Type,
		"i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64", "bool", "char", "str", "String",
		"Vec", "Box", "Option", "Result")

	return c
}

// BuiltinClassifiers returns all built-in classifiers.
func BuiltinClassifiers() []*Classifier {
	return []*Classifier{
		GoClassifier(),
		PythonClassifier(),
		JavaScriptClassifier(),
		RustClassifier(),
	}
}

// ClassifierForExtension returns the built-in classifier handling the
// given file extension, if any.
func ClassifierForExtension(ext string) (*Classifier, bool) {
	if ext == "" {
		return nil, false
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	for _, c := range BuiltinClassifiers() {
		for _, e := range c.FileExtensions() {
			if e == ext {
				return c, true
			}
		}
	}
	return nil, false
}

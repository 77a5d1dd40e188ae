// Package outline holds the fixed content of the rizz.c deck.
package outline

// Section is one slide's title and newline-separated bullet lines
type Section struct {
	Title   string
	Content string
}

// SlideAdder receives sections in order
type SlideAdder interface {
	AddSlide(title, content string)
}

// Rizz returns the eight sections describing rizz.c, in presentation order
func Rizz() []Section {
	return []Section{
		{
			Title:   "Understanding rizz.c",
			Content: "A breakdown of the custom tokenization and parsing system",
		},
		{
			Title: "Overview",
			Content: "A custom tokenizer and parser written in C\n" +
				"Implements a simple programming language\n" +
				"Handles input, variable declaration, loops, and output",
		},
		{
			Title: "Features",
			Content: "Tokenization of a custom language\n" +
				"Parsing and validation of tokens\n" +
				"Execution of basic programming constructs\n" +
				"Error handling and memory management",
		},
		{
			Title: "Data Structures",
			Content: "Token - Represents different tokens in the language\n" +
				"Value - Stores different types of values\n" +
				"ProgramState - Maintains global execution state",
		},
		{
			Title: "Lexical Analysis",
			Content: "Tokenizer scans source code and generates tokens\n" +
				"Recognizes integers, floats, strings, and identifiers\n" +
				"Supports keywords: yap (print), cook (input), sigma (declare), gyatt (loop)",
		},
		{
			Title: "Parsing & Execution",
			Content: "Checks token sequences for validity\n" +
				"Executes commands like print, input, and loops\n" +
				"Stores and retrieves variable values",
		},
		{
			Title: "Error Handling & Memory Management",
			Content: "Uses safe_malloc to prevent memory allocation failures\n" +
				"Implements runtime_error function for error reporting\n" +
				"Properly cleans up allocated memory after execution",
		},
		{
			Title: "Main Function Workflow",
			Content: "Reads source code from a file\n" +
				"Tokenizes the input\n" +
				"Parses and validates tokens\n" +
				"Executes the corresponding actions\n" +
				"Cleans up memory before exiting",
		},
	}
}

// Build adds every section to adder in order
func Build(adder SlideAdder, sections []Section) {
	for _, s := range sections {
		adder.AddSlide(s.Title, s.Content)
	}
}

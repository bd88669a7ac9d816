package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Card ids are what shell scripts capture
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			fmt.Println(idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// The exit code is the only signal in quiet mode
	if f.Quiet {
		return nil
	}

	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if s, ok := data.(fmt.Stringer); ok {
		fmt.Println(s.String())
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}

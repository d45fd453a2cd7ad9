package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/wordcloud/pkg/errors"
)

// readInput returns the text named by arg, reading stdin when arg is "-".
func readInput(arg string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if arg == stdinArg {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read standard input")
		}
	} else {
		data, err = os.ReadFile(arg)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "input file not found: %s", arg)
			}
			return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read %s", arg)
		}
	}

	text := string(data)
	if err := errors.ValidateText(text); err != nil {
		return "", err
	}
	return text, nil
}

// outputBase derives the output path stem from the input argument:
// "notes.txt" becomes "notes", stdin becomes "wordcloud".
func outputBase(arg string) string {
	if arg == stdinArg {
		return appName
	}
	return strings.TrimSuffix(arg, filepath.Ext(arg))
}

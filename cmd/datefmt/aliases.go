package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/c2nes/dateformat"
)

var builtinFormats = map[string]string{
	"iso-date":     dateformat.ISOFormatDate,
	"iso-time":     dateformat.ISOFormatTime,
	"iso-datetime": dateformat.ISOFormatDateTime,
	"basic-date":   dateformat.ISOFormatBasicDate,
	"basic-time":   dateformat.ISOFormatBasicTime,
}

// aliasFile is the --formats file layout:
//
//	formats:
//	  audit: "YYYY-MM-DD hh:mm:ss +HH:MM"
//	  stamp: UNIX_MILLISECONDS
type aliasFile struct {
	Formats map[string]string `yaml:"formats"`
}

// resolveSpec turns the --spec value into a specification string,
// trying the alias file first, then the built-in aliases, and finally
// treating the value as a raw specification.
func (a *app) resolveSpec() (string, error) {
	if a.spec == "" {
		return "", errors.New("--spec is required")
	}
	if a.formatsFile != "" {
		data, err := os.ReadFile(a.formatsFile)
		if err != nil {
			return "", err
		}
		var file aliasFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return "", fmt.Errorf("parsing %s: %w", a.formatsFile, err)
		}
		if spec, ok := file.Formats[a.spec]; ok {
			a.log.Debug("resolved alias", zap.String("alias", a.spec), zap.String("spec", spec))
			return spec, nil
		}
	}
	if spec, ok := builtinFormats[a.spec]; ok {
		return spec, nil
	}
	return a.spec, nil
}

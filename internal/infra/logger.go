// README: zap logger construction.
package infra

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger returns a JSON production logger, or a console logger in development.
func NewLogger(development bool) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if development {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

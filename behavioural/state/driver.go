package state

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// publishRounds is the number of render/publish pairs the driver performs.
// The third round exercises the terminal self-loop.
const publishRounds = 3

// Driver runs the fixed demonstration sequence against a fresh document,
// writing every line to w. Rounds are separated by a blank line.
func Driver(ctx context.Context, w io.Writer, logger *zap.Logger) error {
	doc := NewDocument(WithOutput(w), WithLogger(logger))

	for round := 0; round < publishRounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if round > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("write separator: %w", err)
			}
		}
		doc.Render()
		doc.Publish()
		if err := doc.Err(); err != nil {
			return err
		}
	}
	return nil
}

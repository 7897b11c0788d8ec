// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

func mapMailError(err error) error {
	if err == nil {
		return nil
	}

	var sendErr *mail.SendError
	if errors.As(err, &sendErr) && sendErr.IsTemp() {
		return fmt.Errorf("%w: %w", ErrMailTemporary, err)
	}

	return fmt.Errorf("%w: %w", ErrMailRejected, err)
}

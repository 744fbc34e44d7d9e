package check_touchup

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Query) == "" {
		return fmt.Errorf("%w: query must not be empty", ErrInvalidInput)
	}

	if req.Category != nil && strings.TrimSpace(*req.Category) == "" {
		return fmt.Errorf("%w: category must not be empty", ErrInvalidInput)
	}

	return nil
}

package database

import (
	"context"
	"errors"
	"fmt"

	"ziaclinic/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// Classify wraps a driver error for op. Network failures and timeouts become
// utils.StoreConnectivityError; mongo.ErrNoDocuments stays matchable with
// errors.Is.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	if mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, mongo.ErrClientDisconnected) {
		return &utils.StoreConnectivityError{Op: op, Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}

package tasks

import (
	"context"
	"encoding/json"

	"github.com/theapemachine/diagen/pkg/a2a"
	"github.com/theapemachine/diagen/pkg/errors"
)

func Cancel(
	ctx context.Context,
	raw json.RawMessage,
	tm TaskManager,
) (any, *errors.RpcError) {
	var params a2a.TaskIDParams

	if err := json.Unmarshal(raw, &params); err != nil || params.ID == "" {
		return nil, errors.ErrInvalidParams
	}

	task, rpcErr := tm.CancelTask(ctx, params.ID)

	if rpcErr != nil {
		return nil, rpcErr
	}

	return task, nil
}

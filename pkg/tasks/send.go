package tasks

import (
	"context"
	"encoding/json"

	"github.com/theapemachine/diagen/pkg/a2a"
	"github.com/theapemachine/diagen/pkg/errors"
)

func Send(
	ctx context.Context,
	raw json.RawMessage,
	tm TaskManager,
) (any, *errors.RpcError) {
	var params a2a.TaskSendParams

	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, errors.ErrInvalidParams
	}

	task, rpcErr := tm.SendTask(ctx, params)

	if rpcErr != nil {
		return nil, rpcErr
	}

	return task, nil
}

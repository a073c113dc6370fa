package tasks

import (
	"context"
	"encoding/json"

	"github.com/theapemachine/diagen/pkg/a2a"
	"github.com/theapemachine/diagen/pkg/errors"
)

func List(
	ctx context.Context,
	raw json.RawMessage,
	tm TaskManager,
) (any, *errors.RpcError) {
	var params a2a.TaskListParams

	// params is optional for tasks/list
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, errors.ErrInvalidParams
		}
	}

	list, rpcErr := tm.ListTasks(ctx, params.SessionID)

	if rpcErr != nil {
		return nil, rpcErr
	}

	return list, nil
}

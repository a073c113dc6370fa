package client

import (
	"encoding/json"
	"strconv"
	"sync/atomic"

	"github.com/charmbracelet/log"
	fiberClient "github.com/gofiber/fiber/v3/client"
	"github.com/theapemachine/diagen/pkg/a2a"
	"github.com/theapemachine/diagen/pkg/errors"
	"github.com/theapemachine/diagen/pkg/jsonrpc"
)

/*
A2AClient talks to a single A2A agent endpoint.  Request identifiers are
numeric and monotonically increasing per client instance.
*/
type A2AClient struct {
	baseURL string
	conn    *fiberClient.Client
	seq     atomic.Int64
}

func New(baseURL string) *A2AClient {
	return &A2AClient{
		baseURL: baseURL,
		conn:    fiberClient.New().SetBaseURL(baseURL),
	}
}

func (client *A2AClient) call(method string, params any, result any) error {
	buf, err := json.Marshal(params)

	if err != nil {
		log.Error("failed to marshal params", "method", method, "error", err)
		return err
	}

	req := jsonrpc.Request{
		JSONRPC: jsonrpc.Version,
		ID:      json.RawMessage(strconv.FormatInt(client.seq.Add(1), 10)),
		Method:  method,
		Params:  buf,
	}

	res, err := client.conn.Post("/rpc", fiberClient.Config{
		Header: map[string]string{"Content-Type": "application/json"},
		Body:   req,
	})

	if err != nil {
		return err
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
		Error  *jsonrpc.Error  `json:"error"`
	}

	if err = json.Unmarshal(res.Body(), &envelope); err != nil {
		return err
	}

	if envelope.Error != nil {
		return &errors.RpcError{
			Code:    envelope.Error.Code,
			Message: envelope.Error.Message,
		}
	}

	if result != nil {
		return json.Unmarshal(envelope.Result, result)
	}

	return nil
}

// SendTask submits a new task and returns the just-created snapshot.
func (client *A2AClient) SendTask(params a2a.TaskSendParams) (a2a.Task, error) {
	var task a2a.Task
	err := client.call("tasks/send", params, &task)
	return task, err
}

// GetTask polls one task by id.
func (client *A2AClient) GetTask(id string) (a2a.Task, error) {
	var task a2a.Task
	err := client.call("tasks/get", a2a.TaskIDParams{ID: id}, &task)
	return task, err
}

// CancelTask requests cancellation of one task.
func (client *A2AClient) CancelTask(id string) (a2a.Task, error) {
	var task a2a.Task
	err := client.call("tasks/cancel", a2a.TaskIDParams{ID: id}, &task)
	return task, err
}

// ListTasks lists every task, or only those of one session.
func (client *A2AClient) ListTasks(sessionID string) ([]a2a.Task, error) {
	var list []a2a.Task
	err := client.call("tasks/list", a2a.TaskListParams{SessionID: sessionID}, &list)
	return list, err
}

// AgentCard fetches the capability discovery document.
func (client *A2AClient) AgentCard() (a2a.AgentCard, error) {
	res, err := client.conn.Get("/.well-known/agent.json")

	if err != nil {
		return a2a.AgentCard{}, err
	}

	var card a2a.AgentCard
	err = json.Unmarshal(res.Body(), &card)
	return card, err
}

package service

// A2AServer bundles the agent card, the JSON-RPC dispatcher and a
// TaskManager to expose a fully functional A2A server with minimal glue
// code.  Two endpoints are exposed:
//
//	GET  /.well-known/agent.json – capability discovery document
//	POST /rpc                    – JSON-RPC 2.0

import (
	"bytes"
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/theapemachine/diagen/pkg/a2a"
	"github.com/theapemachine/diagen/pkg/errors"
	"github.com/theapemachine/diagen/pkg/jsonrpc"
	"github.com/theapemachine/diagen/pkg/tasks"
)

/*
A2AServer is safe for concurrent use: the dispatcher itself never suspends
and all shared state lives behind the task store.
*/
type A2AServer struct {
	app     *fiber.App
	card    a2a.AgentCard
	manager tasks.TaskManager
}

func NewA2AServer(card a2a.AgentCard, manager tasks.TaskManager) *A2AServer {
	srv := &A2AServer{
		app: fiber.New(fiber.Config{
			AppName:      card.Name,
			ServerHeader: "A2A-Agent-Server",
		}),
		card:    card,
		manager: manager,
	}

	srv.app.Use(logger.New())
	srv.app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	srv.app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	srv.app.Get(healthcheck.StartupEndpoint, healthcheck.New())
	srv.app.Get("/", srv.handleRoot)
	srv.app.Get("/.well-known/agent.json", srv.handleAgentCard)
	srv.app.Post("/rpc", srv.handleRPC)

	return srv
}

func (srv *A2AServer) Start(addr string) error {
	return srv.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

func (srv *A2AServer) Shutdown() error {
	return srv.app.Shutdown()
}

func (srv *A2AServer) handleRoot(ctx fiber.Ctx) error {
	return ctx.SendString("OK")
}

func (srv *A2AServer) handleAgentCard(ctx fiber.Ctx) error {
	return ctx.JSON(srv.card)
}

/*
handleRPC acts as the central routing for all A2A RPC methods.  Envelope
validation short-circuits on the first failure: the payload must be an
object, the version literal must match, the id must be a string or number,
and only then is the method resolved.  An envelope that cannot be trusted
is answered with a null correlation id.
*/
func (srv *A2AServer) handleRPC(ctx fiber.Ctx) (err error) {
	ctx.Set("Content-Type", "application/json")

	defer func() {
		if r := recover(); r != nil {
			log.Error("panic during dispatch", "panic", r)
			err = ctx.JSON(jsonrpc.NewErrorResponse(
				nil, errors.ErrInternal.Code, errors.ErrInternal.WithMessagef("%v", r).Message,
			))
		}
	}()

	body := bytes.TrimSpace(ctx.Body())

	if len(body) == 0 || body[0] != '{' {
		return ctx.JSON(jsonrpc.NewErrorResponse(
			nil, errors.ErrInvalidRequest.Code, errors.ErrInvalidRequest.Message,
		))
	}

	var request jsonrpc.Request

	if json.Unmarshal(body, &request) != nil || request.JSONRPC != jsonrpc.Version {
		return ctx.JSON(jsonrpc.NewErrorResponse(
			nil, errors.ErrInvalidRequest.Code, errors.ErrInvalidRequest.Message,
		))
	}

	id, ok := request.DecodedID()
	if !ok {
		return ctx.JSON(jsonrpc.NewErrorResponse(
			nil, errors.ErrInvalidRequest.Code, errors.ErrInvalidRequest.Message,
		))
	}

	var (
		result any
		rpcErr *errors.RpcError
	)

	switch request.Method {
	case "tasks/send":
		result, rpcErr = tasks.Send(ctx.Context(), request.Params, srv.manager)
	case "tasks/get":
		result, rpcErr = tasks.Get(ctx.Context(), request.Params, srv.manager)
	case "tasks/cancel":
		result, rpcErr = tasks.Cancel(ctx.Context(), request.Params, srv.manager)
	case "tasks/list":
		result, rpcErr = tasks.List(ctx.Context(), request.Params, srv.manager)
	default:
		return ctx.JSON(jsonrpc.NewErrorResponse(
			id, errors.ErrMethodNotFound.Code, errors.ErrMethodNotFound.Message,
		))
	}

	if rpcErr != nil {
		return ctx.JSON(jsonrpc.NewErrorResponse(id, rpcErr.Code, rpcErr.Message))
	}

	return ctx.JSON(jsonrpc.NewResponse(id, result))
}

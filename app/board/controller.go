package board

import (
	"errors"
	"strconv"

	gohttp "github.com/km-arc/go-board/framework/http"
	"go.uber.org/zap"
)

// Controller exposes the board service over HTTP.
//
//	GET    /boards        ReadBoards
//	POST   /boards        CreateBoard
//	GET    /boards/{id}   ReadBoard
//	PUT    /boards        UpdateBoard
//	DELETE /boards/{id}   DeleteBoard
type Controller struct {
	service   *Service
	responses *gohttp.ResponseBuilder
	logger    *zap.Logger
}

func NewController(service *Service, responses *gohttp.ResponseBuilder, logger *zap.Logger) *Controller {
	return &Controller{service: service, responses: responses, logger: logger.Named("board.controller")}
}

func (c *Controller) ReadBoards() (*gohttp.Response, error) {
	return c.responses.Success(gohttp.StatusOK, c.service.List())
}

func (c *Controller) CreateBoard(req *gohttp.Request) (*gohttp.Response, error) {
	if res := c.requireJSON(req); res != nil {
		return res, nil
	}
	var body CreateRequest
	if err := req.Bind(&body); err != nil {
		return c.responses.Error(gohttp.StatusBadRequest, err.Error()), nil
	}
	if errs := body.Validate(); errs != nil {
		return c.responses.ValidationError(errs), nil
	}
	return c.responses.Success(gohttp.StatusCreated, c.service.Create(body))
}

func (c *Controller) ReadBoard(req *gohttp.Request) (*gohttp.Response, error) {
	id, res := c.boardID(req)
	if res != nil {
		return res, nil
	}
	board, err := c.service.Get(id)
	if err != nil {
		return c.failure(err)
	}
	return c.responses.Success(gohttp.StatusOK, board)
}

func (c *Controller) UpdateBoard(req *gohttp.Request) (*gohttp.Response, error) {
	if res := c.requireJSON(req); res != nil {
		return res, nil
	}
	var body UpdateRequest
	if err := req.Bind(&body); err != nil {
		return c.responses.Error(gohttp.StatusBadRequest, err.Error()), nil
	}
	if errs := body.Validate(); errs != nil {
		return c.responses.ValidationError(errs), nil
	}
	updated, err := c.service.Update(body)
	if err != nil {
		return c.failure(err)
	}
	return c.responses.Success(gohttp.StatusOK, updated)
}

func (c *Controller) DeleteBoard(req *gohttp.Request) (*gohttp.Response, error) {
	id, res := c.boardID(req)
	if res != nil {
		return res, nil
	}
	if err := c.service.Delete(id); err != nil {
		return c.failure(err)
	}
	return c.responses.NoContent(), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// boardID parses the {id} path variable, or returns a 400 response.
func (c *Controller) boardID(req *gohttp.Request) (int64, *gohttp.Response) {
	raw, _ := req.PathVariable("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, c.responses.Error(gohttp.StatusBadRequest, "invalid board id: "+strconv.Quote(raw))
	}
	return id, nil
}

// requireJSON answers 415 for a non-empty body that is not JSON.
func (c *Controller) requireJSON(req *gohttp.Request) *gohttp.Response {
	if len(req.Body()) == 0 || req.IsJSON() {
		return nil
	}
	return c.responses.Error(gohttp.StatusUnsupportedMediaType,
		"unsupported content type: "+strconv.Quote(req.ContentType()))
}

// failure maps a service error to a response. Anything other than a missing
// board is handed back to the router as a handler failure.
func (c *Controller) failure(err error) (*gohttp.Response, error) {
	if errors.Is(err, ErrBoardNotFound) {
		return c.responses.Error(gohttp.StatusNotFound, err.Error()), nil
	}
	c.logger.Error("board operation failed", zap.Error(err))
	return nil, err
}

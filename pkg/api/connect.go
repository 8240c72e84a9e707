package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// TipServiceName is the fully-qualified name of the service.
const TipServiceName = "tipcalc.v1.TipService"

// Procedure paths, each "/" + TipServiceName + "/" + method.
const (
	TipServiceCreateSessionProcedure  = "/tipcalc.v1.TipService/CreateSession"
	TipServiceGetSessionProcedure     = "/tipcalc.v1.TipService/GetSession"
	TipServiceChangeBillProcedure     = "/tipcalc.v1.TipService/ChangeBill"
	TipServiceIncrementSplitProcedure = "/tipcalc.v1.TipService/IncrementSplit"
	TipServiceDecrementSplitProcedure = "/tipcalc.v1.TipService/DecrementSplit"
	TipServiceMoveSliderProcedure     = "/tipcalc.v1.TipService/MoveSlider"
	TipServiceSubmitProcedure         = "/tipcalc.v1.TipService/Submit"
	TipServiceCloseSessionProcedure   = "/tipcalc.v1.TipService/CloseSession"
	TipServiceWatchSessionProcedure   = "/tipcalc.v1.TipService/WatchSession"
)

// TipServiceHandler is implemented by the server side of the service.
type TipServiceHandler interface {
	CreateSession(context.Context, *connect.Request[CreateSessionRequest]) (*connect.Response[SessionResponse], error)
	GetSession(context.Context, *connect.Request[SessionRequest]) (*connect.Response[SessionResponse], error)
	ChangeBill(context.Context, *connect.Request[ChangeBillRequest]) (*connect.Response[SessionResponse], error)
	IncrementSplit(context.Context, *connect.Request[SessionRequest]) (*connect.Response[SessionResponse], error)
	DecrementSplit(context.Context, *connect.Request[SessionRequest]) (*connect.Response[SessionResponse], error)
	MoveSlider(context.Context, *connect.Request[MoveSliderRequest]) (*connect.Response[SessionResponse], error)
	Submit(context.Context, *connect.Request[SessionRequest]) (*connect.Response[SubmitResponse], error)
	CloseSession(context.Context, *connect.Request[SessionRequest]) (*connect.Response[CloseSessionResponse], error)
	WatchSession(context.Context, *connect.Request[SessionRequest], *connect.ServerStream[SessionResponse]) error
}

// NewTipServiceHandler builds an HTTP handler for svc and returns the path
// prefix to mount it on.
func NewTipServiceHandler(svc TipServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(TipServiceCreateSessionProcedure, connect.NewUnaryHandler(TipServiceCreateSessionProcedure, svc.CreateSession, opts...))
	mux.Handle(TipServiceGetSessionProcedure, connect.NewUnaryHandler(TipServiceGetSessionProcedure, svc.GetSession, opts...))
	mux.Handle(TipServiceChangeBillProcedure, connect.NewUnaryHandler(TipServiceChangeBillProcedure, svc.ChangeBill, opts...))
	mux.Handle(TipServiceIncrementSplitProcedure, connect.NewUnaryHandler(TipServiceIncrementSplitProcedure, svc.IncrementSplit, opts...))
	mux.Handle(TipServiceDecrementSplitProcedure, connect.NewUnaryHandler(TipServiceDecrementSplitProcedure, svc.DecrementSplit, opts...))
	mux.Handle(TipServiceMoveSliderProcedure, connect.NewUnaryHandler(TipServiceMoveSliderProcedure, svc.MoveSlider, opts...))
	mux.Handle(TipServiceSubmitProcedure, connect.NewUnaryHandler(TipServiceSubmitProcedure, svc.Submit, opts...))
	mux.Handle(TipServiceCloseSessionProcedure, connect.NewUnaryHandler(TipServiceCloseSessionProcedure, svc.CloseSession, opts...))
	mux.Handle(TipServiceWatchSessionProcedure, connect.NewServerStreamHandler(TipServiceWatchSessionProcedure, svc.WatchSession, opts...))

	return "/" + TipServiceName + "/", mux
}

// TipServiceClient calls a remote TipService.
type TipServiceClient struct {
	createSession  *connect.Client[CreateSessionRequest, SessionResponse]
	getSession     *connect.Client[SessionRequest, SessionResponse]
	changeBill     *connect.Client[ChangeBillRequest, SessionResponse]
	incrementSplit *connect.Client[SessionRequest, SessionResponse]
	decrementSplit *connect.Client[SessionRequest, SessionResponse]
	moveSlider     *connect.Client[MoveSliderRequest, SessionResponse]
	submit         *connect.Client[SessionRequest, SubmitResponse]
	closeSession   *connect.Client[SessionRequest, CloseSessionResponse]
	watchSession   *connect.Client[SessionRequest, SessionResponse]
}

// NewTipServiceClient creates a client for the service at baseURL
// (e.g. "http://localhost:8080").
func NewTipServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TipServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)

	return &TipServiceClient{
		createSession:  connect.NewClient[CreateSessionRequest, SessionResponse](httpClient, baseURL+TipServiceCreateSessionProcedure, opts...),
		getSession:     connect.NewClient[SessionRequest, SessionResponse](httpClient, baseURL+TipServiceGetSessionProcedure, opts...),
		changeBill:     connect.NewClient[ChangeBillRequest, SessionResponse](httpClient, baseURL+TipServiceChangeBillProcedure, opts...),
		incrementSplit: connect.NewClient[SessionRequest, SessionResponse](httpClient, baseURL+TipServiceIncrementSplitProcedure, opts...),
		decrementSplit: connect.NewClient[SessionRequest, SessionResponse](httpClient, baseURL+TipServiceDecrementSplitProcedure, opts...),
		moveSlider:     connect.NewClient[MoveSliderRequest, SessionResponse](httpClient, baseURL+TipServiceMoveSliderProcedure, opts...),
		submit:         connect.NewClient[SessionRequest, SubmitResponse](httpClient, baseURL+TipServiceSubmitProcedure, opts...),
		closeSession:   connect.NewClient[SessionRequest, CloseSessionResponse](httpClient, baseURL+TipServiceCloseSessionProcedure, opts...),
		watchSession:   connect.NewClient[SessionRequest, SessionResponse](httpClient, baseURL+TipServiceWatchSessionProcedure, opts...),
	}
}

func (c *TipServiceClient) CreateSession(ctx context.Context, req *connect.Request[CreateSessionRequest]) (*connect.Response[SessionResponse], error) {
	return c.createSession.CallUnary(ctx, req)
}

func (c *TipServiceClient) GetSession(ctx context.Context, req *connect.Request[SessionRequest]) (*connect.Response[SessionResponse], error) {
	return c.getSession.CallUnary(ctx, req)
}

func (c *TipServiceClient) ChangeBill(ctx context.Context, req *connect.Request[ChangeBillRequest]) (*connect.Response[SessionResponse], error) {
	return c.changeBill.CallUnary(ctx, req)
}

func (c *TipServiceClient) IncrementSplit(ctx context.Context, req *connect.Request[SessionRequest]) (*connect.Response[SessionResponse], error) {
	return c.incrementSplit.CallUnary(ctx, req)
}

func (c *TipServiceClient) DecrementSplit(ctx context.Context, req *connect.Request[SessionRequest]) (*connect.Response[SessionResponse], error) {
	return c.decrementSplit.CallUnary(ctx, req)
}

func (c *TipServiceClient) MoveSlider(ctx context.Context, req *connect.Request[MoveSliderRequest]) (*connect.Response[SessionResponse], error) {
	return c.moveSlider.CallUnary(ctx, req)
}

func (c *TipServiceClient) Submit(ctx context.Context, req *connect.Request[SessionRequest]) (*connect.Response[SubmitResponse], error) {
	return c.submit.CallUnary(ctx, req)
}

func (c *TipServiceClient) CloseSession(ctx context.Context, req *connect.Request[SessionRequest]) (*connect.Response[CloseSessionResponse], error) {
	return c.closeSession.CallUnary(ctx, req)
}

// WatchSession streams a view of the session after every change, starting
// with the current one.
func (c *TipServiceClient) WatchSession(ctx context.Context, req *connect.Request[SessionRequest]) (*connect.ServerStreamForClient[SessionResponse], error) {
	return c.watchSession.CallServerStream(ctx, req)
}

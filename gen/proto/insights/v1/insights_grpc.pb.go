// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: insights/v1/insights.proto

package v1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	InsightsService_ExtractNutrients_FullMethodName = "/insights.v1.InsightsService/ExtractNutrients"
	InsightsService_ListInsights_FullMethodName     = "/insights.v1.InsightsService/ListInsights"
	InsightsService_AnnotateInsight_FullMethodName  = "/insights.v1.InsightsService/AnnotateInsight"
	InsightsService_ExportInsights_FullMethodName   = "/insights.v1.InsightsService/ExportInsights"
)

// InsightsServiceClient is the client API for InsightsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// InsightsService extracts nutrition insights from OCR text and manages the
// stored insight review workflow.
type InsightsServiceClient interface {
	// ExtractNutrients runs value and mention extraction over one input and
	// optionally persists the envelopes for the given barcode.
	ExtractNutrients(ctx context.Context, in *ExtractNutrientsRequest, opts ...grpc.CallOption) (*ExtractNutrientsResponse, error)
	// ListInsights returns stored insights for a barcode or a review status.
	ListInsights(ctx context.Context, in *ListInsightsRequest, opts ...grpc.CallOption) (*ListInsightsResponse, error)
	// AnnotateInsight records a reviewer decision on one insight.
	AnnotateInsight(ctx context.Context, in *AnnotateInsightRequest, opts ...grpc.CallOption) (*AnnotateInsightResponse, error)
	// ExportInsights returns an XLSX workbook of stored insights for review.
	ExportInsights(ctx context.Context, in *ExportInsightsRequest, opts ...grpc.CallOption) (*ExportInsightsResponse, error)
}

type insightsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInsightsServiceClient(cc grpc.ClientConnInterface) InsightsServiceClient {
	return &insightsServiceClient{cc}
}

func (c *insightsServiceClient) ExtractNutrients(ctx context.Context, in *ExtractNutrientsRequest, opts ...grpc.CallOption) (*ExtractNutrientsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractNutrientsResponse)
	err := c.cc.Invoke(ctx, InsightsService_ExtractNutrients_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *insightsServiceClient) ListInsights(ctx context.Context, in *ListInsightsRequest, opts ...grpc.CallOption) (*ListInsightsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListInsightsResponse)
	err := c.cc.Invoke(ctx, InsightsService_ListInsights_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *insightsServiceClient) AnnotateInsight(ctx context.Context, in *AnnotateInsightRequest, opts ...grpc.CallOption) (*AnnotateInsightResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AnnotateInsightResponse)
	err := c.cc.Invoke(ctx, InsightsService_AnnotateInsight_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *insightsServiceClient) ExportInsights(ctx context.Context, in *ExportInsightsRequest, opts ...grpc.CallOption) (*ExportInsightsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportInsightsResponse)
	err := c.cc.Invoke(ctx, InsightsService_ExportInsights_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InsightsServiceServer is the server API for InsightsService service.
// All implementations must embed UnimplementedInsightsServiceServer
// for forward compatibility.
//
// InsightsService extracts nutrition insights from OCR text and manages the
// stored insight review workflow.
type InsightsServiceServer interface {
	// ExtractNutrients runs value and mention extraction over one input and
	// optionally persists the envelopes for the given barcode.
	ExtractNutrients(context.Context, *ExtractNutrientsRequest) (*ExtractNutrientsResponse, error)
	// ListInsights returns stored insights for a barcode or a review status.
	ListInsights(context.Context, *ListInsightsRequest) (*ListInsightsResponse, error)
	// AnnotateInsight records a reviewer decision on one insight.
	AnnotateInsight(context.Context, *AnnotateInsightRequest) (*AnnotateInsightResponse, error)
	// ExportInsights returns an XLSX workbook of stored insights for review.
	ExportInsights(context.Context, *ExportInsightsRequest) (*ExportInsightsResponse, error)
	mustEmbedUnimplementedInsightsServiceServer()
}

// UnimplementedInsightsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInsightsServiceServer struct{}

func (UnimplementedInsightsServiceServer) ExtractNutrients(context.Context, *ExtractNutrientsRequest) (*ExtractNutrientsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractNutrients not implemented")
}
func (UnimplementedInsightsServiceServer) ListInsights(context.Context, *ListInsightsRequest) (*ListInsightsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInsights not implemented")
}
func (UnimplementedInsightsServiceServer) AnnotateInsight(context.Context, *AnnotateInsightRequest) (*AnnotateInsightResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnnotateInsight not implemented")
}
func (UnimplementedInsightsServiceServer) ExportInsights(context.Context, *ExportInsightsRequest) (*ExportInsightsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportInsights not implemented")
}
func (UnimplementedInsightsServiceServer) mustEmbedUnimplementedInsightsServiceServer() {}
func (UnimplementedInsightsServiceServer) testEmbeddedByValue()                         {}

// UnsafeInsightsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InsightsServiceServer will
// result in compilation errors.
type UnsafeInsightsServiceServer interface {
	mustEmbedUnimplementedInsightsServiceServer()
}

func RegisterInsightsServiceServer(s grpc.ServiceRegistrar, srv InsightsServiceServer) {
	// If the following call pancis, it indicates UnimplementedInsightsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InsightsService_ServiceDesc, srv)
}

func _InsightsService_ExtractNutrients_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractNutrientsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InsightsServiceServer).ExtractNutrients(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InsightsService_ExtractNutrients_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InsightsServiceServer).ExtractNutrients(ctx, req.(*ExtractNutrientsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InsightsService_ListInsights_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInsightsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InsightsServiceServer).ListInsights(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InsightsService_ListInsights_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InsightsServiceServer).ListInsights(ctx, req.(*ListInsightsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InsightsService_AnnotateInsight_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnnotateInsightRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InsightsServiceServer).AnnotateInsight(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InsightsService_AnnotateInsight_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InsightsServiceServer).AnnotateInsight(ctx, req.(*AnnotateInsightRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InsightsService_ExportInsights_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportInsightsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InsightsServiceServer).ExportInsights(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InsightsService_ExportInsights_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InsightsServiceServer).ExportInsights(ctx, req.(*ExportInsightsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InsightsService_ServiceDesc is the grpc.ServiceDesc for InsightsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InsightsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "insights.v1.InsightsService",
	HandlerType: (*InsightsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractNutrients",
			Handler:    _InsightsService_ExtractNutrients_Handler,
		},
		{
			MethodName: "ListInsights",
			Handler:    _InsightsService_ListInsights_Handler,
		},
		{
			MethodName: "AnnotateInsight",
			Handler:    _InsightsService_AnnotateInsight_Handler,
		},
		{
			MethodName: "ExportInsights",
			Handler:    _InsightsService_ExportInsights_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "insights/v1/insights.proto",
}

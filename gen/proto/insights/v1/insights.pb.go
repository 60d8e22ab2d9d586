// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: insights/v1/insights.proto

package v1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ExtractNutrientsRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Barcode     string                 `protobuf:"bytes,1,opt,name=barcode,proto3" json:"barcode,omitempty"`
	SourceImage string                 `protobuf:"bytes,2,opt,name=source_image,json=sourceImage,proto3" json:"source_image,omitempty"`
	// Exactly one of ocr_json (a Cloud Vision OCR document) or text (raw label
	// text) must be set.
	OcrJson []byte `protobuf:"bytes,3,opt,name=ocr_json,json=ocrJson,proto3" json:"ocr_json,omitempty"`
	Text    string `protobuf:"bytes,4,opt,name=text,proto3" json:"text,omitempty"`
	// Persist the resulting envelopes; requires barcode.
	Persist       bool `protobuf:"varint,5,opt,name=persist,proto3" json:"persist,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractNutrientsRequest) Reset() {
	*x = ExtractNutrientsRequest{}
	mi := &file_insights_v1_insights_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractNutrientsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractNutrientsRequest) ProtoMessage() {}

func (x *ExtractNutrientsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractNutrientsRequest.ProtoReflect.Descriptor instead.
func (*ExtractNutrientsRequest) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractNutrientsRequest) GetBarcode() string {
	if x != nil {
		return x.Barcode
	}
	return ""
}

func (x *ExtractNutrientsRequest) GetSourceImage() string {
	if x != nil {
		return x.SourceImage
	}
	return ""
}

func (x *ExtractNutrientsRequest) GetOcrJson() []byte {
	if x != nil {
		return x.OcrJson
	}
	return nil
}

func (x *ExtractNutrientsRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ExtractNutrientsRequest) GetPersist() bool {
	if x != nil {
		return x.Persist
	}
	return false
}

type ExtractNutrientsResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// JSON arrays of envelopes; "[]" when nothing matched.
	NutrientsJson string `protobuf:"bytes,1,opt,name=nutrients_json,json=nutrientsJson,proto3" json:"nutrients_json,omitempty"`
	MentionsJson  string `protobuf:"bytes,2,opt,name=mentions_json,json=mentionsJson,proto3" json:"mentions_json,omitempty"`
	Stored        int32  `protobuf:"varint,3,opt,name=stored,proto3" json:"stored,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractNutrientsResponse) Reset() {
	*x = ExtractNutrientsResponse{}
	mi := &file_insights_v1_insights_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractNutrientsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractNutrientsResponse) ProtoMessage() {}

func (x *ExtractNutrientsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractNutrientsResponse.ProtoReflect.Descriptor instead.
func (*ExtractNutrientsResponse) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractNutrientsResponse) GetNutrientsJson() string {
	if x != nil {
		return x.NutrientsJson
	}
	return ""
}

func (x *ExtractNutrientsResponse) GetMentionsJson() string {
	if x != nil {
		return x.MentionsJson
	}
	return ""
}

func (x *ExtractNutrientsResponse) GetStored() int32 {
	if x != nil {
		return x.Stored
	}
	return 0
}

type Insight struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Barcode          string                 `protobuf:"bytes,2,opt,name=barcode,proto3" json:"barcode,omitempty"`
	Type             string                 `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"`
	Status           string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	ExtractorVersion string                 `protobuf:"bytes,5,opt,name=extractor_version,json=extractorVersion,proto3" json:"extractor_version,omitempty"`
	SourceImage      string                 `protobuf:"bytes,6,opt,name=source_image,json=sourceImage,proto3" json:"source_image,omitempty"`
	DataJson         string                 `protobuf:"bytes,7,opt,name=data_json,json=dataJson,proto3" json:"data_json,omitempty"`
	Annotation       int32                  `protobuf:"varint,8,opt,name=annotation,proto3" json:"annotation,omitempty"`
	Outdated         bool                   `protobuf:"varint,9,opt,name=outdated,proto3" json:"outdated,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Insight) Reset() {
	*x = Insight{}
	mi := &file_insights_v1_insights_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Insight) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Insight) ProtoMessage() {}

func (x *Insight) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Insight.ProtoReflect.Descriptor instead.
func (*Insight) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{2}
}

func (x *Insight) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Insight) GetBarcode() string {
	if x != nil {
		return x.Barcode
	}
	return ""
}

func (x *Insight) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Insight) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Insight) GetExtractorVersion() string {
	if x != nil {
		return x.ExtractorVersion
	}
	return ""
}

func (x *Insight) GetSourceImage() string {
	if x != nil {
		return x.SourceImage
	}
	return ""
}

func (x *Insight) GetDataJson() string {
	if x != nil {
		return x.DataJson
	}
	return ""
}

func (x *Insight) GetAnnotation() int32 {
	if x != nil {
		return x.Annotation
	}
	return 0
}

func (x *Insight) GetOutdated() bool {
	if x != nil {
		return x.Outdated
	}
	return false
}

func (x *Insight) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListInsightsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Barcode       string                 `protobuf:"bytes,1,opt,name=barcode,proto3" json:"barcode,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInsightsRequest) Reset() {
	*x = ListInsightsRequest{}
	mi := &file_insights_v1_insights_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInsightsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInsightsRequest) ProtoMessage() {}

func (x *ListInsightsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInsightsRequest.ProtoReflect.Descriptor instead.
func (*ListInsightsRequest) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{3}
}

func (x *ListInsightsRequest) GetBarcode() string {
	if x != nil {
		return x.Barcode
	}
	return ""
}

func (x *ListInsightsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListInsightsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListInsightsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Insights      []*Insight             `protobuf:"bytes,1,rep,name=insights,proto3" json:"insights,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInsightsResponse) Reset() {
	*x = ListInsightsResponse{}
	mi := &file_insights_v1_insights_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInsightsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInsightsResponse) ProtoMessage() {}

func (x *ListInsightsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInsightsResponse.ProtoReflect.Descriptor instead.
func (*ListInsightsResponse) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{4}
}

func (x *ListInsightsResponse) GetInsights() []*Insight {
	if x != nil {
		return x.Insights
	}
	return nil
}

type AnnotateInsightRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	// 1 accepts the insight; 0 and -1 reject it.
	Annotation    int32 `protobuf:"varint,2,opt,name=annotation,proto3" json:"annotation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnnotateInsightRequest) Reset() {
	*x = AnnotateInsightRequest{}
	mi := &file_insights_v1_insights_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnnotateInsightRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnnotateInsightRequest) ProtoMessage() {}

func (x *AnnotateInsightRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnnotateInsightRequest.ProtoReflect.Descriptor instead.
func (*AnnotateInsightRequest) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{5}
}

func (x *AnnotateInsightRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *AnnotateInsightRequest) GetAnnotation() int32 {
	if x != nil {
		return x.Annotation
	}
	return 0
}

type AnnotateInsightResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnnotateInsightResponse) Reset() {
	*x = AnnotateInsightResponse{}
	mi := &file_insights_v1_insights_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnnotateInsightResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnnotateInsightResponse) ProtoMessage() {}

func (x *AnnotateInsightResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnnotateInsightResponse.ProtoReflect.Descriptor instead.
func (*AnnotateInsightResponse) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{6}
}

type ExportInsightsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// When barcode is set the export covers that product only;
	// otherwise it covers pending insights up to limit.
	Barcode       string `protobuf:"bytes,1,opt,name=barcode,proto3" json:"barcode,omitempty"`
	Limit         int32  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInsightsRequest) Reset() {
	*x = ExportInsightsRequest{}
	mi := &file_insights_v1_insights_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInsightsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInsightsRequest) ProtoMessage() {}

func (x *ExportInsightsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInsightsRequest.ProtoReflect.Descriptor instead.
func (*ExportInsightsRequest) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{7}
}

func (x *ExportInsightsRequest) GetBarcode() string {
	if x != nil {
		return x.Barcode
	}
	return ""
}

func (x *ExportInsightsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ExportInsightsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInsightsResponse) Reset() {
	*x = ExportInsightsResponse{}
	mi := &file_insights_v1_insights_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInsightsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInsightsResponse) ProtoMessage() {}

func (x *ExportInsightsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_insights_v1_insights_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInsightsResponse.ProtoReflect.Descriptor instead.
func (*ExportInsightsResponse) Descriptor() ([]byte, []int) {
	return file_insights_v1_insights_proto_rawDescGZIP(), []int{8}
}

func (x *ExportInsightsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_insights_v1_insights_proto protoreflect.FileDescriptor

const file_insights_v1_insights_proto_rawDesc = "" +
	"\n" +
	"\x1ainsights/v1/insights.proto\x12\vinsights.v1\"\x9f\x01\n" +
	"\x17ExtractNutrientsRequest\x12\x18\n" +
	"\abarcode\x18\x01 \x01(\tR\abarcode\x12!\n" +
	"\fsource_image\x18\x02 \x01(\tR\vsourceImage\x12\x19\n" +
	"\bocr_json\x18\x03 \x01(\fR\aocrJson\x12\x12\n" +
	"\x04text\x18\x04 \x01(\tR\x04text\x12\x18\n" +
	"\apersist\x18\x05 \x01(\bR\apersist\"~\n" +
	"\x18ExtractNutrientsResponse\x12%\n" +
	"\x0enutrients_json\x18\x01 \x01(\tR\rnutrientsJson\x12#\n" +
	"\rmentions_json\x18\x02 \x01(\tR\fmentionsJson\x12\x16\n" +
	"\x06stored\x18\x03 \x01(\x05R\x06stored\"\xa7\x02\n" +
	"\aInsight\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x18\n" +
	"\abarcode\x18\x02 \x01(\tR\abarcode\x12\x12\n" +
	"\x04type\x18\x03 \x01(\tR\x04type\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12+\n" +
	"\x11extractor_version\x18\x05 \x01(\tR\x10extractorVersion\x12!\n" +
	"\fsource_image\x18\x06 \x01(\tR\vsourceImage\x12\x1b\n" +
	"\tdata_json\x18\a \x01(\tR\bdataJson\x12\x1e\n" +
	"\n" +
	"annotation\x18\b \x01(\x05R\n" +
	"annotation\x12\x1a\n" +
	"\boutdated\x18\t \x01(\bR\boutdated\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\"]\n" +
	"\x13ListInsightsRequest\x12\x18\n" +
	"\abarcode\x18\x01 \x01(\tR\abarcode\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\"H\n" +
	"\x14ListInsightsResponse\x120\n" +
	"\binsights\x18\x01 \x03(\v2\x14.insights.v1.InsightR\binsights\"H\n" +
	"\x16AnnotateInsightRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1e\n" +
	"\n" +
	"annotation\x18\x02 \x01(\x05R\n" +
	"annotation\"\x19\n" +
	"\x17AnnotateInsightResponse\"G\n" +
	"\x15ExportInsightsRequest\x12\x18\n" +
	"\abarcode\x18\x01 \x01(\tR\abarcode\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\",\n" +
	"\x16ExportInsightsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x80\x03\n" +
	"\x0fInsightsService\x12_\n" +
	"\x10ExtractNutrients\x12$.insights.v1.ExtractNutrientsRequest\x1a%.insights.v1.ExtractNutrientsResponse\x12S\n" +
	"\fListInsights\x12 .insights.v1.ListInsightsRequest\x1a!.insights.v1.ListInsightsResponse\x12\\\n" +
	"\x0fAnnotateInsight\x12#.insights.v1.AnnotateInsightRequest\x1a$.insights.v1.AnnotateInsightResponse\x12Y\n" +
	"\x0eExportInsights\x12\".insights.v1.ExportInsightsRequest\x1a#.insights.v1.ExportInsightsResponseBGZEgithub.com/camille-renard/nutrition-insights/gen/proto/insights/v1;v1b\x06proto3"

var (
	file_insights_v1_insights_proto_rawDescOnce sync.Once
	file_insights_v1_insights_proto_rawDescData []byte
)

func file_insights_v1_insights_proto_rawDescGZIP() []byte {
	file_insights_v1_insights_proto_rawDescOnce.Do(func() {
		file_insights_v1_insights_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_insights_v1_insights_proto_rawDesc), len(file_insights_v1_insights_proto_rawDesc)))
	})
	return file_insights_v1_insights_proto_rawDescData
}

var file_insights_v1_insights_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_insights_v1_insights_proto_goTypes = []any{
	(*ExtractNutrientsRequest)(nil),  // 0: insights.v1.ExtractNutrientsRequest
	(*ExtractNutrientsResponse)(nil), // 1: insights.v1.ExtractNutrientsResponse
	(*Insight)(nil),                  // 2: insights.v1.Insight
	(*ListInsightsRequest)(nil),      // 3: insights.v1.ListInsightsRequest
	(*ListInsightsResponse)(nil),     // 4: insights.v1.ListInsightsResponse
	(*AnnotateInsightRequest)(nil),   // 5: insights.v1.AnnotateInsightRequest
	(*AnnotateInsightResponse)(nil),  // 6: insights.v1.AnnotateInsightResponse
	(*ExportInsightsRequest)(nil),    // 7: insights.v1.ExportInsightsRequest
	(*ExportInsightsResponse)(nil),   // 8: insights.v1.ExportInsightsResponse
}
var file_insights_v1_insights_proto_depIdxs = []int32{
	2, // 0: insights.v1.ListInsightsResponse.insights:type_name -> insights.v1.Insight
	0, // 1: insights.v1.InsightsService.ExtractNutrients:input_type -> insights.v1.ExtractNutrientsRequest
	3, // 2: insights.v1.InsightsService.ListInsights:input_type -> insights.v1.ListInsightsRequest
	5, // 3: insights.v1.InsightsService.AnnotateInsight:input_type -> insights.v1.AnnotateInsightRequest
	7, // 4: insights.v1.InsightsService.ExportInsights:input_type -> insights.v1.ExportInsightsRequest
	1, // 5: insights.v1.InsightsService.ExtractNutrients:output_type -> insights.v1.ExtractNutrientsResponse
	4, // 6: insights.v1.InsightsService.ListInsights:output_type -> insights.v1.ListInsightsResponse
	6, // 7: insights.v1.InsightsService.AnnotateInsight:output_type -> insights.v1.AnnotateInsightResponse
	8, // 8: insights.v1.InsightsService.ExportInsights:output_type -> insights.v1.ExportInsightsResponse
	5, // [5:9] is the sub-list for method output_type
	1, // [1:5] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_insights_v1_insights_proto_init() }
func file_insights_v1_insights_proto_init() {
	if File_insights_v1_insights_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_insights_v1_insights_proto_rawDesc), len(file_insights_v1_insights_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_insights_v1_insights_proto_goTypes,
		DependencyIndexes: file_insights_v1_insights_proto_depIdxs,
		MessageInfos:      file_insights_v1_insights_proto_msgTypes,
	}.Build()
	File_insights_v1_insights_proto = out.File
	file_insights_v1_insights_proto_goTypes = nil
	file_insights_v1_insights_proto_depIdxs = nil
}

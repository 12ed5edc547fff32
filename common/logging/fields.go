package logging

const (
	FieldComponent = "component"

	FieldDuration = "duration"
	FieldUrl      = "url"
	FieldReqId    = "reqId"

	FieldRpcMethod  = "rpcMethod"
	FieldStatusCode = "statusCode"

	FieldUpdateKind = "updateKind"
	FieldJointId    = "jointId"
	FieldTargetId   = "targetId"
	FieldCount      = "count"

	FieldConfigFile = "configFile"
	FieldParamsFile = "paramsFile"
)

package core

// scheduleGetInfoQueryBody field layout: 1=header (added by wrapQuery), 2=schedule_id.
const scheduleQueryFieldScheduleID = 2

// EncodeScheduleGetInfoQuery builds the wire bytes for a ScheduleGetInfo
// query envelope (service tag 53) for the given schedule id.
func EncodeScheduleGetInfoQuery(scheduleId EntityId) []byte {
	return wrapQuery(QueryTagSchedule, scheduleQueryFieldScheduleID, encodeEntityId(scheduleId))
}

// scheduleResponseTag is the fixed top-level field carrying a
// ScheduleGetInfoResponse; its payload is the ScheduleInfo message itself
// (the service response header is carried by the transport's gRPC-web
// trailer rather than nested here).
const scheduleResponseTag = 153

// DecodeScheduleGetInfoResponse parses a ScheduleGetInfo response envelope
// and returns the nested ScheduleInfo. A missing ScheduleInfo sub-message
// yields ErrMalformedResponse.
func DecodeScheduleGetInfoResponse(envelope []byte) (ScheduleInfo, error) {
	inner, err := unwrapQuery(scheduleResponseTag, envelope)
	if err != nil {
		return ScheduleInfo{}, err
	}
	return decodeScheduleInfo(inner)
}

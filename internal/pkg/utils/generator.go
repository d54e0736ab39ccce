package utils

import (
	"fmt"
	"labrequest-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateWizardSessionToken() string {
	return uuid.NewString()
}

// GenerateTestRequestNumber builds a human-readable request number such as
// NTR-20230101-1A2B3C. The random suffix comes from a fresh UUID.
func GenerateTestRequestNumber(flowKind string) string {
	datePart := time.Now().Format("20060102")
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	format := constvars.TestRequestNumberFormatNTR
	if flowKind == "asr" {
		format = constvars.TestRequestNumberFormatASR
	}
	return fmt.Sprintf(format, datePart, suffix)
}

func GenerateObjectName(prefix, fileName string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s", prefix, timestamp, fileName)
}

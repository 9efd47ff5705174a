package simulator

import (
	"strconv"
	"strings"

	"github.com/ArchitCodes1204/campus-delivery-platform/internal/models"
	"github.com/shopspring/decimal"
)

// ConfirmationRecord is one simulated order as written to an output.
type ConfirmationRecord struct {
	OrderID   string  `json:"orderId" parquet:"name=orderId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Status    string  `json:"status" parquet:"name=status,type=BYTE_ARRAY,convertedtype=UTF8"`
	UserID    string  `json:"userId" parquet:"name=userId,type=BYTE_ARRAY,convertedtype=UTF8"`
	UserName  string  `json:"userName" parquet:"name=userName,type=BYTE_ARRAY,convertedtype=UTF8"`
	ItemIDs   string  `json:"itemIds" parquet:"name=itemIds,type=BYTE_ARRAY,convertedtype=UTF8"`
	ItemCount int32   `json:"itemCount" parquet:"name=itemCount,type=INT32"`
	Total     float64 `json:"total" parquet:"name=total,type=DOUBLE"`
	Timestamp string  `json:"timestamp" parquet:"name=timestamp,type=BYTE_ARRAY,convertedtype=UTF8"`
	LatencyMS int64   `json:"latencyMs" parquet:"name=latencyMs,type=INT64"`
}

func newRecord(conf models.OrderConfirmation, total decimal.Decimal, latencyMS int64) ConfirmationRecord {
	ids := make([]string, len(conf.Items))
	for i, item := range conf.Items {
		ids[i] = strconv.Itoa(item.ID)
	}
	return ConfirmationRecord{
		OrderID:   conf.OrderID,
		Status:    conf.Status,
		UserID:    conf.UserID,
		UserName:  conf.UserName,
		ItemIDs:   strings.Join(ids, ","),
		ItemCount: int32(len(conf.Items)),
		Total:     total.InexactFloat64(),
		Timestamp: conf.Timestamp,
		LatencyMS: latencyMS,
	}
}

// Summary totals one simulation run.
type Summary struct {
	Placed   int
	Failed   int
	Skipped  int
	Revenue  decimal.Decimal
	Students int
}

package constants

import "time"

const (
	// RetryCount defind retry count of price downloads
	RetryCount = 3
	// RetryInterval define retry intervals of price downloads
	RetryInterval = time.Second * 5
	// RequestInterval define pause after every statement request
	RequestInterval = time.Second * 5
	// DefaultParallel define default statement fetch workers
	DefaultParallel = 1
	// DatePattern define date input pattern
	DatePattern = "2006-01-02"
	// MopsEndpoint define market observation post system statement endpoint
	MopsEndpoint = "https://mops.twse.com.tw/server-java/t164sb01"
	// MopsReportID define consolidated report code
	MopsReportID = "C"
	// YahooEndpoint define yahoo finance chart endpoint
	YahooEndpoint = "https://query2.finance.yahoo.com/v8/finance/chart/"
	// SeasonColumn define placeholder column label of a parsed statement
	SeasonColumn = "season"
)

package tickpick

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "chart": {
	        "result": [
	            {
	                "meta": {
	                    "currency": "USD",
	                    "symbol": "AAPL",
	                    "regularMarketPrice": 232.14,
	                    ...
*/

// Quote returns the latest traded price for a symbol.
func Quote(symbol string) (Money, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	addr := "https://query1.finance.yahoo.com/v8/finance/chart/" + url.PathEscape(symbol)

	var jobj any
	if err := jwget(newClient(), addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("error retrieving quote for %q: %w", symbol, err)
	}

	val, err := jfloat(jobj, "$.chart.result[0].meta.regularMarketPrice", symbol)
	if err != nil {
		return Money{}, err
	}

	cur := "USD"
	if jcur, err := jsonpath.Get("$.chart.result[0].meta.currency", jobj); err == nil {
		if s, ok := first(jcur).(string); ok && s != "" {
			cur = s
		}
	}
	return M(val, cur), nil
}

// jfloat extracts a float value at path, tolerating the value being served
// as a string.
func jfloat(jobj any, path, name string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing quote for %q: %q %w", name, path, err)
	}
	jval = first(jval)

	if val, ok := jval.(float64); ok {
		return val, nil
	}
	// sometimes, this kind of API returns the value as a string
	sval, ok := jval.(string)
	if !ok {
		return 0, fmt.Errorf("cannot read value for %q: neither a float nor a string: %v", name, jval)
	}
	sval = strings.ReplaceAll(sval, ",", ".")
	sval = strings.ReplaceAll(sval, " ", "")
	val, err := strconv.ParseFloat(sval, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot read value for %q: invalid string %q: %w", name, sval, err)
	}
	return val, nil
}

// because jsonpath is never clear about whether it returns a list of 1
// answer, or a single answer: keep the first one if any.
func first(jval any) any {
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		return jlist[0]
	}
	return jval
}

package price

import (
	"regexp"
	"strconv"
)

// 数字と小数点以外を落とす
var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// Warning は表示価格が読めなかったという非致命の報せ。
// 追加自体は価格0で続行する。
type Warning struct {
	Raw string
}

func (w *Warning) Error() string {
	return "unparsable price: " + w.Raw
}

// Parse は "$12.34" のような表示価格を数値にする。
// 記号を落とした残りが空か数値として読めない場合は 0.0 と Warning を返す。
func Parse(display string) (float64, *Warning) {
	stripped := nonNumeric.ReplaceAllString(display, "")
	if stripped == "" {
		return 0, &Warning{Raw: display}
	}

	v, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return 0, &Warning{Raw: display}
	}

	return v, nil
}

package statement

import (
	"regexp"
	"strings"
)

// Column labels of the two statement tables, as printed.
var (
	SummaryHeader = []string{"TRANSACTION TYPE", "PAID IN", "PAID OUT"}
	LedgerHeader  = []string{
		"Receipt No.", "Completion Time", "Details", "Transaction Status",
		"Paid In", "Withdrawn", "Balance",
	}
)

var (
	timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`)
	amountPattern    = regexp.MustCompile(`^-?[\d,]+\.\d{2}$`)
)

var transactionStatuses = []string{
	"Completed", "Failed", "Reversed", "Cancelled", "Declined", "Pending",
}

// splitMergedCells repairs a ledger row whose neighbouring cells were printed
// close enough to be extracted as one. A cell is split only when the cell to
// its right is empty; wrapped lines stay with the left cell.
func splitMergedCells(row []string) []string {
	out := append([]string(nil), row...)
	for col := 0; col < transactionColumns-1 && col+1 < len(out); col++ {
		if strings.TrimSpace(out[col+1]) != "" {
			continue
		}
		first, wrapped, _ := strings.Cut(out[col], "\n")
		head, tail, ok := splitCell(col, strings.TrimSpace(first))
		if !ok {
			continue
		}
		if wrapped != "" {
			head += "\n" + wrapped
		}
		out[col], out[col+1] = head, tail
	}
	return out
}

// splitCell separates the value owned by column col from the text that
// belongs to the next column.
func splitCell(col int, s string) (head, tail string, ok bool) {
	switch col {
	case 0, 3:
		head, tail, ok = strings.Cut(s, " ")
		if ok && col == 3 && !amountPattern.MatchString(firstField(tail)) {
			return "", "", false
		}
	case 1:
		loc := timestampPattern.FindStringIndex(s)
		if loc == nil || loc[1] == len(s) || s[loc[1]] != ' ' {
			return "", "", false
		}
		head, tail, ok = s[:loc[1]], s[loc[1]+1:], true
	case 2:
		i := strings.LastIndexByte(s, ' ')
		if i < 0 || !isStatus(s[i+1:]) {
			return "", "", false
		}
		head, tail, ok = s[:i], s[i+1:], true
	case 4, 5:
		head, tail, ok = strings.Cut(s, " ")
		if ok && !amountPattern.MatchString(head) {
			return "", "", false
		}
	}
	head, tail = strings.TrimSpace(head), strings.TrimSpace(tail)
	return head, tail, ok && head != "" && tail != ""
}

func isStatus(word string) bool {
	for _, status := range transactionStatuses {
		if strings.EqualFold(word, status) {
			return true
		}
	}
	return false
}

func firstField(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// Package tui renders the delivery board for a terminal.
package tui

import (
	"fmt"
	"strings"

	"flowerdelivery/internal/core/application/board"
	"flowerdelivery/internal/core/application/usecases/queries"
	"flowerdelivery/internal/core/domain/model/delivery"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	title          = "행복한 꽃배달"
	noAddressLabel = "직접 입력"
)

var (
	accent  = lipgloss.Color("#D97706")
	fg      = lipgloss.Color("#E8E6E3")
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	tabStyle     = lipgloss.NewStyle().Foreground(dim)
	activeStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg).Underline(true)
	addressStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	errorStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
	totalStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)

	statusColors = map[delivery.Status]lipgloss.Color{
		delivery.StatusReceived:          warning,
		delivery.StatusPickedUp:          accent,
		delivery.StatusDelivering:        accent,
		delivery.StatusPendingSettlement: danger,
		delivery.StatusSettled:           success,
	}

	tabs = []struct {
		view  delivery.View
		label string
	}{
		{delivery.ViewAll, "전체"},
		{delivery.ViewInProgress, "진행중"},
		{delivery.ViewSettled, "정산완료"},
	}
)

var won = message.NewPrinter(language.Korean)

// RenderBoard draws the header with today's summary and the visible delivery cards.
func RenderBoard(s board.State, today queries.TodaySummaryQueryResponse) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	renderTabs(&b, s.Tab)
	b.WriteString("\n\n")

	b.WriteString(totalStyle.Render(fmt.Sprintf("오늘 배송건의 배송료 합계: %s원", formatWon(today.FeeTotal))))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("(%s · %d건)", today.Date, today.Count)))
	b.WriteString("\n")
	if s.OnlyPickedUp {
		b.WriteString(dimStyle.Render("상차완료인 건만 보기"))
		b.WriteString("\n")
	}
	if s.Err != "" {
		b.WriteString(errorStyle.Render(s.Err))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := board.Visible(s)
	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("배송건이 없습니다."))
		b.WriteString("\n")
	}
	for _, d := range visible {
		renderCard(&b, d)
	}

	if len(s.Contacts) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("연락처 %d개", len(s.Contacts))))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderContacts lists the address book entries, one per line.
func RenderContacts(contacts []queries.ContactView) string {
	var b strings.Builder
	for _, c := range contacts {
		b.WriteString(addressStyle.Render(c.BusinessName))
		if len(c.Phones) > 0 {
			b.WriteString("  ")
			b.WriteString(strings.Join(c.Phones, ", "))
		}
		if c.Address != "" {
			b.WriteString("  ")
			b.WriteString(dimStyle.Render(c.Address))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderTabs(b *strings.Builder, active delivery.View) {
	labels := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.view == active {
			labels = append(labels, activeStyle.Render(t.label))
			continue
		}
		labels = append(labels, tabStyle.Render(t.label))
	}
	b.WriteString(strings.Join(labels, "  "))
}

func renderCard(b *strings.Builder, d queries.DeliveryView) {
	address := d.RecipientAddress
	if address == "" {
		address = noAddressLabel
	}
	action := lipgloss.NewStyle().Bold(true).Foreground(statusColors[d.Status]).Render("[" + d.ActionLabel + "]")

	fmt.Fprintf(b, "%s  %s  %s\n", dimStyle.Render(d.ID), addressStyle.Render(address), action)
	fmt.Fprintf(b, "    %d박스 · ₩%s · %s", d.BoxCount, formatWon(d.Fee), d.SettlementLabel)
	if d.BusinessName != "" {
		fmt.Fprintf(b, " · %s", d.BusinessName)
	}
	b.WriteString("\n")
}

func formatWon(n int) string {
	return won.Sprintf("%d", n)
}

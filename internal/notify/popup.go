package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Windows has no native notify-send equivalent we can rely on across
// versions, so the popup is a borderless always-on-top WinForms banner
// rendered by PowerShell on every screen for a few seconds.

// popupSlotDir is where concurrent popups claim slots so multiple
// notifications stack vertically instead of covering each other.
func popupSlotDir() string {
	return filepath.Join(os.TempDir(), "peon-ping-popups")
}

// claimPopupSlot reserves the first free stacking slot. Slot claiming uses
// mkdir as the mutex: it either succeeds exclusively or the next slot is
// tried. The returned path must be released after the popup closes.
func claimPopupSlot() (slotPath string, slot int) {
	dir := popupSlotDir()
	_ = os.MkdirAll(dir, 0755)
	for slot = 0; ; slot++ {
		slotPath = filepath.Join(dir, fmt.Sprintf("slot-%d", slot))
		if err := os.Mkdir(slotPath, 0755); err == nil {
			return slotPath, slot
		}
		if slot > 32 {
			// Give up on stacking; overlap beats spinning forever.
			return "", slot
		}
	}
}

// releasePopupSlot frees a claimed slot.
func releasePopupSlot(slotPath string) {
	if slotPath != "" {
		_ = os.Remove(slotPath)
	}
}

// buildPopupScript renders the PowerShell banner script for one message.
// slot determines the vertical offset so stacked popups do not overlap.
func buildPopupScript(msg, color string, slot int) string {
	r, g, b := popupRGB(color)
	yOffset := 40 + slot*90
	safeMsg := strings.ReplaceAll(msg, "'", "''")

	return fmt.Sprintf(
		"Add-Type -AssemblyName System.Windows.Forms; "+
			"Add-Type -AssemblyName System.Drawing; "+
			"foreach ($screen in [System.Windows.Forms.Screen]::AllScreens) { "+
			"$form = New-Object System.Windows.Forms.Form; "+
			"$form.FormBorderStyle = 'None'; "+
			"$form.BackColor = [System.Drawing.Color]::FromArgb(%d, %d, %d); "+
			"$form.Size = New-Object System.Drawing.Size(500, 80); "+
			"$form.TopMost = $true; "+
			"$form.ShowInTaskbar = $false; "+
			"$form.StartPosition = 'Manual'; "+
			"$form.Location = New-Object System.Drawing.Point("+
			"($screen.WorkingArea.X + ($screen.WorkingArea.Width - 500) / 2), "+
			"($screen.WorkingArea.Y + %d)); "+
			"$label = New-Object System.Windows.Forms.Label; "+
			"$label.Text = '%s'; "+
			"$label.ForeColor = [System.Drawing.Color]::White; "+
			"$label.Font = New-Object System.Drawing.Font('Segoe UI', 16, [System.Drawing.FontStyle]::Bold); "+
			"$label.TextAlign = 'MiddleCenter'; "+
			"$label.Dock = 'Fill'; "+
			"$form.Controls.Add($label); "+
			"$form.Show() } "+
			"Start-Sleep -Seconds 4; "+
			"[System.Windows.Forms.Application]::Exit()",
		r, g, b, yOffset, safeMsg)
}

// Package render paints a wire-transfer letter as a paginated PDF.
//
// The letter is a right-aligned date line, two fixed paragraphs, a bordered
// two-column table of transfer details and a closing block with signature.
//
// # Table layout
//
// Row heights are estimated from explicit line breaks only:
//
//	height = max(MinRowHeight, 2*CellPadding + lines*LineHeight)
//
// A long unbroken value is not measured and may spill out of its cell.
// Before each row the page cursor is checked against TableBottom; when the
// row would cross it a new page starts at the top margin and the row is
// drawn there in full, even if it still crosses the boundary. Rows are
// never split. Text after the table flows with the PDF engine's own
// automatic page breaks.
package render

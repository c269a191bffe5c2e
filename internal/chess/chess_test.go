package chess

import (
	"testing"
)

func TestColourOpposite(t *testing.T) {
	tests := []struct {
		colour Colour
		want   Colour
	}{
		{White, Black},
		{Black, White},
	}

	for _, tt := range tests {
		t.Run(tt.colour.String(), func(t *testing.T) {
			if got := tt.colour.Opposite(); got != tt.want {
				t.Errorf("%v.Opposite() = %v; want %v", tt.colour, got, tt.want)
			}
			if got := tt.colour.Opposite().Opposite(); got != tt.colour {
				t.Errorf("%v.Opposite().Opposite() = %v; want %v", tt.colour, got, tt.colour)
			}
		})
	}
}

func TestPieceTypeLetter(t *testing.T) {
	tests := []struct {
		piece  PieceType
		letter byte
		name   string
	}{
		{NoPieceType, ' ', "None"},
		{Pawn, 'P', "Pawn"},
		{Knight, 'N', "Knight"},
		{Bishop, 'B', "Bishop"},
		{Rook, 'R', "Rook"},
		{Queen, 'Q', "Queen"},
		{King, 'K', "King"},
		{PieceType(42), '?', "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.piece.Letter(); got != tt.letter {
				t.Errorf("Letter() = %q; want %q", got, tt.letter)
			}
			if got := tt.piece.String(); got != tt.name {
				t.Errorf("String() = %q; want %q", got, tt.name)
			}
		})
	}
}

func TestCellEquality(t *testing.T) {
	if Piece(Rook, White) != Piece(Rook, White) {
		t.Error("identical cells compare unequal")
	}
	if Piece(Rook, White) == Piece(Rook, Black) {
		t.Error("cells of different colour compare equal")
	}
	if Piece(Rook, White) == Piece(Queen, White) {
		t.Error("cells of different type compare equal")
	}
	if !Empty.IsEmpty() || (Cell{}) != Empty {
		t.Error("zero Cell is not Empty")
	}
	if Piece(Pawn, Black).IsEmpty() {
		t.Error("a pawn cell reports IsEmpty")
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{Empty, "."},
		{Piece(King, White), "K"},
		{Piece(King, Black), "k"},
		{Piece(Knight, Black), "n"},
		{Piece(Pawn, White), "P"},
	}

	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("%#v.String() = %q; want %q", tt.cell, got, tt.want)
		}
	}
}

func TestCanMoveInto(t *testing.T) {
	tests := []struct {
		name  string
		cell  Cell
		mover Colour
		want  bool
	}{
		{"empty for white", Empty, White, true},
		{"empty for black", Empty, Black, true},
		{"white captures black", Piece(Knight, Black), White, true},
		{"black captures white", Piece(Queen, White), Black, true},
		{"white blocked by white", Piece(Pawn, White), White, false},
		{"black blocked by black", Piece(King, Black), Black, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CanMoveInto(tt.cell, tt.mover); got != tt.want {
				t.Errorf("CanMoveInto(%v, %v) = %v; want %v", tt.cell, tt.mover, got, tt.want)
			}
		})
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		text    string
		want    Square
		wantErr bool
	}{
		{"a8", Sq(Row8, ColA), false},
		{"h8", Sq(Row8, ColH), false},
		{"a1", Sq(Row1, ColA), false},
		{"h1", Sq(Row1, ColH), false},
		{"e4", Sq(Row4, ColE), false},
		{"e3", Sq(Row3, ColE), false},
		{"c6", Sq(Row6, ColC), false},
		{"i1", NoSquare, true},
		{"a9", NoSquare, true},
		{"a0", NoSquare, true},
		{"E4", NoSquare, true},
		{"e", NoSquare, true},
		{"e44", NoSquare, true},
		{"", NoSquare, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSquare(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSquareString(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq := Sq(row, col)
			back, err := ParseSquare(sq.String())
			if err != nil {
				t.Fatalf("ParseSquare(%q) error = %v", sq.String(), err)
			}
			if back != sq {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", sq.String(), back, sq)
			}
		}
	}
	if got := NoSquare.String(); got != "-" {
		t.Errorf("NoSquare.String() = %q; want %q", got, "-")
	}
}

func TestMustParseSquarePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseSquare(\"z9\") did not panic")
		}
	}()
	MustParseSquare("z9")
}

func TestNewEmptyPosition(t *testing.T) {
	p := NewEmptyPosition()

	if p.ToMove != White {
		t.Errorf("ToMove = %v; want White", p.ToMove)
	}
	if p.HasEnPassant() {
		t.Errorf("EnPassant = %v; want none", p.EnPassant)
	}
	if got := p.CastlingRights(); got != "-" {
		t.Errorf("CastlingRights() = %q; want \"-\"", got)
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if got := p.Get(Sq(row, col)); got != Empty {
				t.Errorf("Get(%v) = %v; want Empty", Sq(row, col), got)
			}
		}
	}
}

func TestPositionCopyIsIndependent(t *testing.T) {
	p := NewEmptyPosition()
	p.Set(MustParseSquare("e1"), Piece(King, White))

	c := p.Copy()
	if *c != *p {
		t.Fatal("Copy() differs from original")
	}

	c.Set(MustParseSquare("e1"), Empty)
	c.WKingCastle = true
	if p.Get(MustParseSquare("e1")) != Piece(King, White) {
		t.Error("mutating the copy changed the original board")
	}
	if p.WKingCastle {
		t.Error("mutating the copy changed the original castling rights")
	}
}

func TestPositionKings(t *testing.T) {
	p := NewEmptyPosition()
	p.Set(MustParseSquare("e1"), Piece(King, White))
	p.Set(MustParseSquare("e8"), Piece(King, Black))

	white := p.Kings(White)
	if len(white) != 1 || white[0] != MustParseSquare("e1") {
		t.Errorf("Kings(White) = %v; want [e1]", white)
	}
	black := p.Kings(Black)
	if len(black) != 1 || black[0] != MustParseSquare("e8") {
		t.Errorf("Kings(Black) = %v; want [e8]", black)
	}
}

func TestPositionString(t *testing.T) {
	p := NewEmptyPosition()
	p.Set(MustParseSquare("a8"), Piece(King, Black))
	p.Set(MustParseSquare("h1"), Piece(Rook, White))
	p.ToMove = Black
	p.WKingCastle = true
	p.EnPassant = MustParseSquare("e3")

	want := "k.......\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		"........\n" +
		".......R\n" +
		"b K e3"
	if got := p.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

package cube

// moveEffect describes how one move permutes and re-orients corners and
// edges. cornerAffected/edgeAffected list the slots read before the move;
// cornerTarget/edgeTarget list where each of those four pieces lands.
// cornerOriDelta/edgeOriDelta are indexed the same as the affected slots
// and applied to whatever piece occupies that slot after the permutation.
type moveEffect struct {
	cornerAffected [4]int
	cornerTarget   [4]int
	cornerOriDelta [4]uint8

	edgeAffected [4]int
	edgeTarget   [4]int
	edgeOriDelta [4]uint8
}

var moveEffects = [18]moveEffect{
	// U
	{
		cornerAffected: [4]int{UFL, UBL, UBR, UFR}, cornerTarget: [4]int{UBL, UBR, UFR, UFL},
		edgeAffected: [4]int{UF, UL, UB, UR}, edgeTarget: [4]int{UL, UB, UR, UF},
	},
	// U'
	{
		cornerAffected: [4]int{UFL, UFR, UBR, UBL}, cornerTarget: [4]int{UFR, UBR, UBL, UFL},
		edgeAffected: [4]int{UF, UR, UB, UL}, edgeTarget: [4]int{UR, UB, UL, UF},
	},
	// U2
	{
		cornerAffected: [4]int{UFL, UBR, UFR, UBL}, cornerTarget: [4]int{UBR, UFL, UBL, UFR},
		edgeAffected: [4]int{UF, UB, UL, UR}, edgeTarget: [4]int{UB, UF, UR, UL},
	},
	// D
	{
		cornerAffected: [4]int{DFL, DFR, DBR, DBL}, cornerTarget: [4]int{DFR, DBR, DBL, DFL},
		edgeAffected: [4]int{DF, DR, DB, DL}, edgeTarget: [4]int{DR, DB, DL, DF},
	},
	// D'
	{
		cornerAffected: [4]int{DFL, DBL, DBR, DFR}, cornerTarget: [4]int{DBL, DBR, DFR, DFL},
		edgeAffected: [4]int{DF, DL, DB, DR}, edgeTarget: [4]int{DL, DB, DR, DF},
	},
	// D2
	{
		cornerAffected: [4]int{DFL, DBR, DFR, DBL}, cornerTarget: [4]int{DBR, DFL, DBL, DFR},
		edgeAffected: [4]int{DF, DB, DL, DR}, edgeTarget: [4]int{DB, DF, DR, DL},
	},
	// F
	{
		cornerAffected: [4]int{UFL, UFR, DFR, DFL}, cornerTarget: [4]int{UFR, DFR, DFL, UFL},
		cornerOriDelta: [4]uint8{2, 1, 2, 1},
		edgeAffected:   [4]int{UF, FR, DF, FL}, edgeTarget: [4]int{FR, DF, FL, UF},
		edgeOriDelta: [4]uint8{1, 1, 1, 1},
	},
	// F'
	{
		cornerAffected: [4]int{UFL, DFL, DFR, UFR}, cornerTarget: [4]int{DFL, DFR, UFR, UFL},
		cornerOriDelta: [4]uint8{2, 1, 2, 1},
		edgeAffected:   [4]int{UF, FL, DF, FR}, edgeTarget: [4]int{FL, DF, FR, UF},
		edgeOriDelta: [4]uint8{1, 1, 1, 1},
	},
	// F2
	{
		cornerAffected: [4]int{UFL, DFR, UFR, DFL}, cornerTarget: [4]int{DFR, UFL, DFL, UFR},
		edgeAffected: [4]int{UF, DF, FL, FR}, edgeTarget: [4]int{DF, UF, FR, FL},
	},
	// B
	{
		cornerAffected: [4]int{UBL, DBL, DBR, UBR}, cornerTarget: [4]int{DBL, DBR, UBR, UBL},
		cornerOriDelta: [4]uint8{1, 2, 1, 2},
		edgeAffected:   [4]int{UB, BL, DB, BR}, edgeTarget: [4]int{BL, DB, BR, UB},
		edgeOriDelta: [4]uint8{1, 1, 1, 1},
	},
	// B'
	{
		cornerAffected: [4]int{UBL, UBR, DBR, DBL}, cornerTarget: [4]int{UBR, DBR, DBL, UBL},
		cornerOriDelta: [4]uint8{1, 2, 1, 2},
		edgeAffected:   [4]int{UB, BR, DB, BL}, edgeTarget: [4]int{BR, DB, BL, UB},
		edgeOriDelta: [4]uint8{1, 1, 1, 1},
	},
	// B2
	{
		cornerAffected: [4]int{UBL, DBR, UBR, DBL}, cornerTarget: [4]int{DBR, UBL, DBL, UBR},
		edgeAffected: [4]int{UB, DB, BL, BR}, edgeTarget: [4]int{DB, UB, BR, BL},
	},
	// L
	{
		cornerAffected: [4]int{UFL, DFL, DBL, UBL}, cornerTarget: [4]int{DFL, DBL, UBL, UFL},
		cornerOriDelta: [4]uint8{1, 2, 1, 2},
		edgeAffected:   [4]int{UL, FL, DL, BL}, edgeTarget: [4]int{FL, DL, BL, UL},
	},
	// L'
	{
		cornerAffected: [4]int{UFL, UBL, DBL, DFL}, cornerTarget: [4]int{UBL, DBL, DFL, UFL},
		cornerOriDelta: [4]uint8{1, 2, 1, 2},
		edgeAffected:   [4]int{UL, BL, DL, FL}, edgeTarget: [4]int{BL, DL, FL, UL},
	},
	// L2
	{
		cornerAffected: [4]int{UFL, DBL, UBL, DFL}, cornerTarget: [4]int{DBL, UFL, DFL, UBL},
		edgeAffected: [4]int{UL, DL, FL, BL}, edgeTarget: [4]int{DL, UL, BL, FL},
	},
	// R
	{
		cornerAffected: [4]int{UFR, UBR, DBR, DFR}, cornerTarget: [4]int{UBR, DBR, DFR, UFR},
		cornerOriDelta: [4]uint8{2, 1, 2, 1},
		edgeAffected:   [4]int{UR, BR, DR, FR}, edgeTarget: [4]int{BR, DR, FR, UR},
	},
	// R'
	{
		cornerAffected: [4]int{UFR, DFR, DBR, UBR}, cornerTarget: [4]int{DFR, DBR, UBR, UFR},
		cornerOriDelta: [4]uint8{2, 1, 2, 1},
		edgeAffected:   [4]int{UR, FR, DR, BR}, edgeTarget: [4]int{FR, DR, BR, UR},
	},
	// R2
	{
		cornerAffected: [4]int{UFR, DBR, UBR, DFR}, cornerTarget: [4]int{DBR, UFR, DFR, UBR},
		edgeAffected: [4]int{UR, DR, FR, BR}, edgeTarget: [4]int{DR, UR, BR, FR},
	},
}

package profile

// FieldKind selects how a field's value is presented.
type FieldKind int

const (
	// Text renders the value, or the placeholder when blank.
	Text FieldKind = iota
	// Presence renders whether a file was uploaded.
	Presence
	// Boolean renders a Yes/No agreement.
	Boolean
	// Identity renders like Text with a highlight tone.
	Identity
)

func (k FieldKind) String() string {
	switch k {
	case Presence:
		return "presence"
	case Boolean:
		return "boolean"
	case Identity:
		return "identity"
	default:
		return "text"
	}
}

// Field binds a record key to its display label.
type Field struct {
	Key   string
	Label string
	Kind  FieldKind
}

// Group is one of the fixed display groups.
type Group struct {
	Title  string
	Fields []Field
}

var groups = []Group{
	{
		Title: "Personal Details",
		Fields: []Field{
			{"fullName", "Full Name", Text},
			{"fatherName", "Father's Name", Text},
			{"dateOfBirth", "Date of Birth", Text},
			{"gender", "Gender", Text},
			{"email", "Email", Text},
			{"mobileNumber", "Mobile Number", Text},
			{"address", "Address", Text},
			{"city", "City", Text},
			{"state", "State", Text},
		},
	},
	{
		Title: "Exam Preferences",
		Fields: []Field{
			{"preferredExamCity", "Preferred Exam City", Text},
			{"preferredShift", "Preferred Shift", Text},
		},
	},
	{
		Title: "Experience",
		Fields: []Field{
			{"currentOccupation", "Current Occupation", Text},
			{"yearsOfExperience", "Years of Experience", Text},
			{"previousExamDuties", "Previous Exam Duties", Text},
		},
	},
	{
		Title: "Documents",
		Fields: []Field{
			{"photo", "Photograph", Presence},
			{"signature", "Signature", Presence},
			{"idProof", "ID Proof", Presence},
			{"aadhaarNumber", "Aadhaar Number", Identity},
		},
	},
	{
		Title: "Bank Details",
		Fields: []Field{
			{"accountHolderName", "Account Holder Name", Text},
			{"bankName", "Bank Name", Text},
			{"accountNumber", "Account Number", Text},
			{"ifscCode", "IFSC Code", Text},
			{"branchName", "Branch Name", Text},
		},
	},
	{
		Title: "Health Declaration",
		Fields: []Field{
			{"bloodGroup", "Blood Group", Text},
			{"height", "Height (cm)", Text},
			{"weight", "Weight (kg)", Text},
			{"chronicConditions", "Chronic Conditions", Text},
			{"allergies", "Allergies", Text},
			{"emergencyContactName", "Emergency Contact Name", Text},
			{"emergencyContactNumber", "Emergency Contact Number", Text},
			{"covidDeclaration", "COVID-19 Declaration", Boolean},
		},
	},
	{
		Title: "Agreements",
		Fields: []Field{
			{"penaltyClause", "Penalty Clause Accepted", Boolean},
		},
	},
}

// Groups returns the display groups in their fixed order. The result is a
// deep copy; callers cannot alter the shared tables.
func Groups() []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{Title: g.Title, Fields: append([]Field(nil), g.Fields...)}
	}
	return out
}

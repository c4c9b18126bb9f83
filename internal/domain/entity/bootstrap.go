package entity

// BootstrapAdvocates returns the fixed dataset inserted by the seed
// endpoint. Returns a fresh slice on every call so callers can mutate
// records (e.g. populate generated IDs) without affecting later seeds.
func BootstrapAdvocates() []Advocate {
	return []Advocate{
		{FirstName: "John", LastName: "Doe", City: "New York", Degree: "MD", Specialties: []string{"Bipolar", "LGBTQ", "Medication/Prescribing"}, YearsOfExperience: 10, PhoneNumber: 5551234567},
		{FirstName: "Jane", LastName: "Smith", City: "Los Angeles", Degree: "PhD", Specialties: []string{"Relationship Issues", "Trauma & PTSD"}, YearsOfExperience: 8, PhoneNumber: 5559876543},
		{FirstName: "Alice", LastName: "Johnson", City: "Chicago", Degree: "MSW", Specialties: []string{"Pediatrics", "Grief", "Chronic pain"}, YearsOfExperience: 5, PhoneNumber: 5554567890},
		{FirstName: "Michael", LastName: "Brown", City: "Houston", Degree: "MD", Specialties: []string{"Anxiety", "Depression"}, YearsOfExperience: 12, PhoneNumber: 5556543210},
		{FirstName: "Emily", LastName: "Davis", City: "Phoenix", Degree: "PhD", Specialties: []string{"Eating disorders", "Obsessive-compulsive disorders"}, YearsOfExperience: 7, PhoneNumber: 5553210987},
		{FirstName: "Chris", LastName: "Martinez", City: "Philadelphia", Degree: "MSW", Specialties: []string{"Substance use/abuse", "Domestic abuse"}, YearsOfExperience: 9, PhoneNumber: 5557890123},
		{FirstName: "Jessica", LastName: "Taylor", City: "San Antonio", Degree: "MD", Specialties: []string{"Sleep issues", "Diabetes", "Coaching"}, YearsOfExperience: 11, PhoneNumber: 5554561234},
		{FirstName: "David", LastName: "Harris", City: "San Diego", Degree: "PhD", Specialties: []string{"Schizophrenia and psychotic disorders", "Life coaching"}, YearsOfExperience: 6, PhoneNumber: 5557896543},
		{FirstName: "Laura", LastName: "Clark", City: "Dallas", Degree: "MSW", Specialties: []string{"Attention and hyperactivity (ADHD)", "Personal growth"}, YearsOfExperience: 4, PhoneNumber: 5550123456},
		{FirstName: "Daniel", LastName: "Lewis", City: "San Jose", Degree: "MD", Specialties: []string{"Men's issues", "Trauma & PTSD", "Personality disorders"}, YearsOfExperience: 13, PhoneNumber: 5553217654},
		{FirstName: "Sarah", LastName: "Lee", City: "Austin", Degree: "PhD", Specialties: []string{"Women's issues", "Relationship Issues"}, YearsOfExperience: 10, PhoneNumber: 5551238765},
		{FirstName: "James", LastName: "King", City: "Jacksonville", Degree: "MSW", Specialties: []string{"Suicide History/Attempts", "General Mental Health"}, YearsOfExperience: 5, PhoneNumber: 5456789012},
		{FirstName: "Megan", LastName: "Green", City: "Columbus", Degree: "MD", Specialties: []string{"Weight loss & nutrition", "Eating disorders"}, YearsOfExperience: 14, PhoneNumber: 5553344556},
		{FirstName: "Joshua", LastName: "Walker", City: "San Francisco", Degree: "PhD", Specialties: []string{"LGBTQ", "Neuropsychological evaluations & testing"}, YearsOfExperience: 9, PhoneNumber: 5557788990},
		{FirstName: "Amanda", LastName: "Hall", City: "Fort Worth", Degree: "MSW", Specialties: []string{"Grief", "Bipolar", "Family and children"}, YearsOfExperience: 3, PhoneNumber: 5559988776},
	}
}

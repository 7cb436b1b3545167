package chapter

// catalog lists chapters per subject in syllabus order. Order matters: free access for
// non-biology subjects is decided by position in these slices.
var catalog = map[Subject][]Chapter{
	SubjectBiology: {
		{ID: "b11_1", Name: "1. The Living World", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_2", Name: "2. Biological Classification", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_3", Name: "3. Plant Kingdom", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_4", Name: "4. Animal Kingdom", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_5", Name: "5. Morphology of Flowering Plants", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_6", Name: "6. Anatomy of Flowering Plants", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_7", Name: "7. Structural organisation in animals", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_8", Name: "8. Cell - The unit of life", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_9", Name: "9. Cell Cycle and Cell Division", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_10", Name: "10. Biomolecules", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_11", Name: "11. Enzymes", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_12", Name: "12. Transport in plants", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_13", Name: "13. Mineral Nutrition", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_14", Name: "14. Photosynthesis in higher plants", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_15", Name: "15. Respiration in plants", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_16", Name: "16. Plant Growth and Development", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_17", Name: "17. Digestion and Absorption", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_18", Name: "18. Breathing and Exchange of gases", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_19", Name: "19. Body fluid and Circulation", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_20", Name: "20. Excretory products and their elimination", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_21", Name: "21. Locomotion and Movement", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_22", Name: "22. Neural Control and Coordination", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_23", Name: "23. Sense Organ (Eye and Ear)", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b11_24", Name: "24. Endocrine Glands", Class: "11", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b12_25", Name: "25. Reproduction in Organisms", Class: "12", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b12_26", Name: "26. Sexual reproduction in flowering plants", Class: "12", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b12_27", Name: "27. Human reproduction & Reproductive health", Class: "12", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b12_28", Name: "28. Principles of Inheritance and Variation", Class: "12", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b12_29", Name: "29. Molecular Basis of Inheritance", Class: "12", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b12_30", Name: "30. Evolution", Class: "12", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b12_31", Name: "31. Human Health and Disease", Class: "12", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b12_32", Name: "32. Animal Husbandry", Class: "12", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b12_33", Name: "33. Strategies for Enhancement in food production", Class: "12", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b12_34", Name: "34. Biotechnology - Principles and Processes", Class: "12", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b12_35", Name: "35. Biotechnology and its Application", Class: "12", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b12_36", Name: "36. Microbes in Human Welfare", Class: "12", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b12_37", Name: "37. Organism and Population", Class: "12", Difficulty: "NEET Level", Subject: SubjectBiology},
		{ID: "b12_38", Name: "38. Ecosystem", Class: "12", Difficulty: "NEET Level", Subject: SubjectBiology},
	},
	SubjectPhysics: {
		{ID: "p11_1", Name: "Units and Measurements", Class: "11", Difficulty: "NEET Level", Subject: SubjectPhysics},
		{ID: "p11_2", Name: "Motion in a Straight Line", Class: "11", Difficulty: "NEET Level", Subject: SubjectPhysics},
		{ID: "p11_3", Name: "Laws of Motion", Class: "11", Difficulty: "NEET Level", Subject: SubjectPhysics},
		{ID: "p11_4", Name: "Work, Energy and Power", Class: "11", Difficulty: "NEET Level", Subject: SubjectPhysics},
		{ID: "p11_5", Name: "Gravitation", Class: "11", Difficulty: "NEET Level", Subject: SubjectPhysics},
		{ID: "p12_1", Name: "Electrostatic Potential", Class: "12", Difficulty: "NEET Level", Subject: SubjectPhysics},
		{ID: "p12_2", Name: "Current Electricity", Class: "12", Difficulty: "NEET Level", Subject: SubjectPhysics},
		{ID: "p12_3", Name: "Ray Optics", Class: "12", Difficulty: "NEET Level", Subject: SubjectPhysics},
	},
	SubjectChemistry: {
		{ID: "c11_1", Name: "Basic Concepts of Chemistry", Class: "11", Difficulty: "NEET Level", Subject: SubjectChemistry},
		{ID: "c11_2", Name: "Structure of Atom", Class: "11", Difficulty: "NEET Level", Subject: SubjectChemistry},
		{ID: "c11_3", Name: "Chemical Bonding", Class: "11", Difficulty: "NEET Level", Subject: SubjectChemistry},
		{ID: "c11_4", Name: "Thermodynamics", Class: "11", Difficulty: "NEET Level", Subject: SubjectChemistry},
		{ID: "c12_1", Name: "Solutions", Class: "12", Difficulty: "NEET Level", Subject: SubjectChemistry},
		{ID: "c12_2", Name: "Electrochemistry", Class: "12", Difficulty: "NEET Level", Subject: SubjectChemistry},
		{ID: "c12_3", Name: "Chemical Kinetics", Class: "12", Difficulty: "NEET Level", Subject: SubjectChemistry},
	},
}

package driver

// Cypher for the pedigree graph schema: (:Person {ind, sex}) nodes with
// (child)-[:is_child]->(parent) relations, refined per role into
// (father)-[:is_father]->(child) and (mother)-[:is_mother]->(child), plus
// :Founder and :Leaf labels derived after loading.
const (
	SavePersonsQuery = `
		UNWIND $rows AS row
		MERGE (person:Person {ind: row.ind})
		SET person.sex = row.sex,
			person.batch = $batch
		RETURN count(person) AS persons
	`

	SaveFatherEdgesQuery = `
		UNWIND $rows AS row
		MATCH (child:Person {ind: row.child})
		MATCH (father:Person {ind: row.parent})
		MERGE (child)-[:is_child]->(father)
		MERGE (father)-[:is_father]->(child)
		RETURN count(*) AS edges
	`

	SaveMotherEdgesQuery = `
		UNWIND $rows AS row
		MATCH (child:Person {ind: row.child})
		MATCH (mother:Person {ind: row.parent})
		MERGE (child)-[:is_child]->(mother)
		MERGE (mother)-[:is_mother]->(child)
		RETURN count(*) AS edges
	`

	// A founder has no parent via is_child; a leaf has no children.
	LabelFoundersQuery = `
		MATCH (p:Person) WHERE NOT (p)-[:is_child]->() SET p:Founder
	`

	LabelLeavesQuery = `
		MATCH (p:Person) WHERE NOT (p)<-[:is_child]-() SET p:Leaf
	`

	AncestorsQuery = `
		UNWIND $inds AS x
		MATCH (proband:Person {ind: x})-[:is_child*]->(parent:Person)
		RETURN DISTINCT parent.ind AS ind
	`

	RecordsQuery = `
		UNWIND $inds AS x
		MATCH (child:Person {ind: x})
		OPTIONAL MATCH (child)<-[:is_father]-(father)
		OPTIONAL MATCH (child)<-[:is_mother]-(mother)
		RETURN child.ind AS ind, father.ind AS father, mother.ind AS mother, child.sex AS sex
	`

	DescendantCountsQuery = `
		MATCH (p:Person)
		OPTIONAL MATCH (p)<-[:is_child*]-(d:Person)
		RETURN p.ind AS ind, count(DISTINCT d) AS descendants
	`

	NodeStatsQuery = `
		MATCH (p:Person)
		RETURN count(p) AS persons,
			count(CASE WHEN p.sex = 'F' THEN 1 END) AS females,
			count(CASE WHEN p.sex = 'M' THEN 1 END) AS males,
			count(CASE WHEN p:Founder THEN 1 END) AS founders,
			count(CASE WHEN p:Leaf THEN 1 END) AS leaves
	`

	EdgeStatsQuery = `
		RETURN size([()-[r:is_child]->() | r]) AS is_child,
			size([()-[r:is_father]->() | r]) AS is_father,
			size([()-[r:is_mother]->() | r]) AS is_mother
	`
)

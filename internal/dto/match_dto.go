package dto

type MatchJobsRequest struct {
	Skills FlexibleSkills `json:"skills"`
}

type MatchBarterRequest struct {
	MySkill     string `json:"mySkill"`
	TargetSkill string `json:"targetSkill"`
	UserID      int    `json:"userId"`
}
